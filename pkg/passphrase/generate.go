// Package passphrase builds multi-word passphrases from a vocabulary. Words
// are drawn without replacement, randomly capitalized, optionally run through
// vowel substitution, and the joined result has a random subset of its
// characters uppercased. Passphrases that come out too short are thrown away
// and regenerated, up to a fixed number of attempts.
package passphrase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/nchaloult/passgen/pkg/random"
	"github.com/nchaloult/passgen/pkg/wordlist"
)

const (
	// MinWords and MaxWords bound Request.WordCount.
	MinWords = 2
	MaxWords = 16

	// DefaultMinLength is exclusive: a passphrase must be longer than this.
	DefaultMinLength = 10
	// DefaultMaxLength is inclusive.
	DefaultMaxLength = 127
	// DefaultMaxAttempts caps how many too-short passphrases are discarded
	// before giving up.
	DefaultMaxAttempts = 100
)

// Rejection reasons reported to an Observer.
const (
	ReasonTooShort = "too_short"
	ReasonTooLong  = "too_long"
)

// Request describes the passphrase a caller wants.
type Request struct {
	WordCount       int
	UseSubstitution bool
}

// Validate checks that the word count is in [MinWords, MaxWords].
func (r Request) Validate() error {
	if r.WordCount < MinWords || r.WordCount > MaxWords {
		return fmt.Errorf("%w: must be in the range [%d, %d], got: %d",
			ErrInvalidWordCount, MinWords, MaxWords, r.WordCount)
	}
	return nil
}

// Observer is notified about generation attempts. Implementations must be
// safe for concurrent use if the Generator is shared between goroutines.
type Observer interface {
	// AttemptRejected is called for every discarded or failed attempt.
	AttemptRejected(reason string)
	// Generated is called once a passphrase is accepted.
	Generated(attempts, length int)
}

type nopObserver struct{}

func (nopObserver) AttemptRejected(string) {}
func (nopObserver) Generated(int, int)     {}

// Generator produces passphrases. It holds no per-call state, so a single
// Generator can be shared.
type Generator struct {
	rand        *random.Policy
	minLength   int
	maxLength   int
	maxAttempts int
	logger      *zap.Logger
	observer    Observer
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom sets the randomness policy. Defaults to random.Default().
func WithRandom(p *random.Policy) Option {
	return func(g *Generator) { g.rand = p }
}

// WithMinLength sets the exclusive minimum passphrase length.
func WithMinLength(n int) Option {
	return func(g *Generator) { g.minLength = n }
}

// WithMaxLength sets the inclusive maximum passphrase length.
func WithMaxLength(n int) Option {
	return func(g *Generator) { g.maxLength = n }
}

// WithMaxAttempts sets how many attempts are made before giving up with
// ErrUnsatisfiableLengthConstraint. Values below 1 are treated as 1.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) { g.maxAttempts = n }
}

// WithLogger sets the logger rejected attempts are reported to at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithObserver sets an Observer, typically a metrics collector.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

// NewGenerator returns a Generator with the defaults overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rand:        random.Default(),
		minLength:   DefaultMinLength,
		maxLength:   DefaultMaxLength,
		maxAttempts: DefaultMaxAttempts,
		logger:      zap.NewNop(),
		observer:    nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxAttempts < 1 {
		g.maxAttempts = 1
	}

	return g
}

// fragment is one word of a passphrase candidate.
type fragment struct {
	word        string
	capitalized bool
	substituted bool
}

// candidate is the ordered list of fragments built during one attempt.
type candidate []fragment

func (c candidate) String() string {
	words := make([]string, len(c))
	for i, f := range c {
		words[i] = f.word
	}
	return strings.Join(words, " ")
}

// Generate returns a passphrase of req.WordCount distinct words from vocab.
func (g *Generator) Generate(vocab *wordlist.Vocabulary, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if req.WordCount > vocab.Len() {
		return "", fmt.Errorf("%w: asked for %d, have %d",
			ErrInsufficientVocabulary, req.WordCount, vocab.Len())
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		c, err := g.buildCandidate(vocab, req)
		if err != nil {
			return "", err
		}

		p, err := g.capitalizeRandomCharacters(c.String())
		if err != nil {
			return "", err
		}

		length := utf8.RuneCountInString(p)
		if length > g.maxLength {
			g.observer.AttemptRejected(ReasonTooLong)
			return "", fmt.Errorf("%w: %d characters, limit is %d",
				ErrPassphraseTooLong, length, g.maxLength)
		}
		if length <= g.minLength {
			g.observer.AttemptRejected(ReasonTooShort)
			g.logger.Debug("discarding short passphrase",
				zap.Int("attempt", attempt),
				zap.Int("length", length),
				zap.Int("min_length", g.minLength))
			continue
		}

		g.observer.Generated(attempt, length)
		return p, nil
	}

	return "", fmt.Errorf("%w: %d attempts were all %d characters or shorter",
		ErrUnsatisfiableLengthConstraint, g.maxAttempts, g.minLength)
}

// buildCandidate selects the words for one attempt and applies per-word
// capitalization and substitution.
func (g *Generator) buildCandidate(vocab *wordlist.Vocabulary, req Request) (candidate, error) {
	indices, err := g.rand.Indices(vocab.Len(), req.WordCount)
	if err != nil {
		return nil, err
	}

	c := make(candidate, len(indices))
	for i, idx := range indices {
		c[i].word = vocab.At(idx)

		capitalize, err := g.rand.Bool()
		if err != nil {
			return nil, err
		}
		if capitalize {
			c[i].word = capitalizeFirst(c[i].word)
			c[i].capitalized = true
		}
	}

	if !req.UseSubstitution {
		return c, nil
	}

	maxSpecialWords := req.WordCount / 2
	if maxSpecialWords == 0 {
		maxSpecialWords = 1
	}
	n, err := g.rand.Intn(maxSpecialWords)
	if err != nil {
		return nil, err
	}
	positions, err := g.rand.Indices(len(c), n+1)
	if err != nil {
		return nil, err
	}
	for _, pos := range positions {
		c[pos].word = Substitute(c[pos].word)
		c[pos].substituted = true
	}

	return c, nil
}

// capitalizeRandomCharacters uppercases between one and half of the
// characters in s, picked at random.
func (g *Generator) capitalizeRandomCharacters(s string) (string, error) {
	runes := []rune(s)

	maxCapitalize := len(runes) / 2
	if maxCapitalize == 0 {
		maxCapitalize = 1
	}
	n, err := g.rand.Intn(maxCapitalize)
	if err != nil {
		return "", err
	}
	indices, err := g.rand.Indices(len(runes), n+1)
	if err != nil {
		return "", err
	}
	for _, i := range indices {
		runes[i] = toUpper(runes[i])
	}

	return string(runes), nil
}

// capitalizeFirst uppercases the first character of word and leaves the rest
// unchanged.
func capitalizeFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(toUpper(r)) + word[size:]
}

func toUpper(r rune) rune {
	if isSubstitutionSymbol(r) {
		return r
	}
	return unicode.ToUpper(r)
}
