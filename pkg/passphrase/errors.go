package passphrase

import (
	"errors"

	"github.com/nchaloult/passgen/pkg/random"
)

var (
	// ErrInvalidWordCount is returned when a request asks for fewer than
	// MinWords or more than MaxWords words.
	ErrInvalidWordCount = errors.New("invalid word count")

	// ErrInsufficientVocabulary is returned when the vocabulary holds fewer
	// words than were requested. It's random.ErrNotEnoughElements, so a
	// sample that's too big for its population reports the same error
	// whether it's caught here or by random.Policy.Choose.
	ErrInsufficientVocabulary = random.ErrNotEnoughElements

	// ErrPassphraseTooLong is returned when a generated passphrase exceeds the
	// maximum length. Retrying with the same words can't fix that, so the
	// generator gives up right away.
	ErrPassphraseTooLong = errors.New("passphrase exceeds the maximum length")

	// ErrUnsatisfiableLengthConstraint is returned when every attempt produced
	// a passphrase at or below the minimum length.
	ErrUnsatisfiableLengthConstraint = errors.New("could not generate a long enough passphrase")

	// ErrRandomSourceUnavailable is random.ErrRandomSourceUnavailable, so
	// callers of this package don't need to import random to check for it.
	ErrRandomSourceUnavailable = random.ErrRandomSourceUnavailable
)
