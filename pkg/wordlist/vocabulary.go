package wordlist

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyWord is returned when a vocabulary would contain an empty string.
	ErrEmptyWord = errors.New("word list contains an empty word")

	// ErrDuplicateWord is returned when a vocabulary would contain the same
	// word twice.
	ErrDuplicateWord = errors.New("word list contains a duplicate word")

	// ErrEmptyVocabulary is returned when a source yields no usable words.
	ErrEmptyVocabulary = errors.New("word list is empty")
)

// Vocabulary is an immutable, ordered set of distinct, non-empty words.
type Vocabulary struct {
	words []string
}

// NewVocabulary returns a Vocabulary holding a copy of words. It fails if any
// word is empty or appears more than once.
func NewVocabulary(words []string) (*Vocabulary, error) {
	seen := make(map[string]struct{}, len(words))
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: line %d", ErrEmptyWord, i+1)
		}
		if _, ok := seen[w]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		seen[w] = struct{}{}
	}

	return &Vocabulary{words: append([]string(nil), words...)}, nil
}

// Len returns the number of words in the vocabulary.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.words)
}

// At returns the i'th word.
func (v *Vocabulary) At(i int) string {
	return v.words[i]
}

// Words returns a copy of the vocabulary's words in order.
func (v *Vocabulary) Words() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.words...)
}
