// Package cleaner turns raw word lists into vetted vocabularies suitable for
// passphrase generation.
package cleaner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Options tune the cleaning pipeline.
type Options struct {
	// MinLength and MaxLength bound a kept word's length in characters.
	MinLength int
	MaxLength int

	// MaxRepeat is the longest run of one character allowed, so 2 keeps
	// "balloon" and drops "brrr".
	MaxRepeat int

	// CommonWords are dropped from the output. Compared after lowercasing.
	CommonWords []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinLength: 3,
		MaxLength: 15,
		MaxRepeat: 2,
	}
}

// Step transforms a word list.
type Step func([]string) []string

// Pipeline returns the cleaning steps for opts, in the order Clean applies
// them.
func Pipeline(opts Options) []Step {
	return []Step{
		NormalizeNFC,
		RemoveSpecialCharacters,
		ToLower,
		TrimSpaces,
		RemoveShortWords(opts.MinLength),
		RemoveRepeatedCharacters(opts.MaxRepeat),
		RemoveDuplicates,
		RemoveNumeric,
		RemoveEmpty,
		FilterByLength(opts.MinLength, opts.MaxLength),
		RemoveCommonWords(opts.CommonWords),
	}
}

// Clean runs every step of the pipeline over words.
func Clean(words []string, opts Options) []string {
	for _, step := range Pipeline(opts) {
		words = step(words)
	}
	return words
}

func mapWords(words []string, fn func(string) string) []string {
	res := make([]string, len(words))
	for i, w := range words {
		res[i] = fn(w)
	}
	return res
}

func filterWords(words []string, keep func(string) bool) []string {
	res := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			res = append(res, w)
		}
	}
	return res
}

// NormalizeNFC composes each word into NFC, so decomposed accents become
// single letters before RemoveSpecialCharacters looks at them.
func NormalizeNFC(words []string) []string {
	return mapWords(words, norm.NFC.String)
}

// RemoveSpecialCharacters strips everything but letters and digits from each
// word. Letters outside ASCII are kept so accented word lists survive.
func RemoveSpecialCharacters(words []string) []string {
	return mapWords(words, func(w string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, w)
	})
}

// ToLower lowercases each word.
func ToLower(words []string) []string {
	return mapWords(words, strings.ToLower)
}

// TrimSpaces trims leading and trailing whitespace from each word.
func TrimSpaces(words []string) []string {
	return mapWords(words, strings.TrimSpace)
}

// RemoveShortWords drops words shorter than min characters.
func RemoveShortWords(min int) Step {
	return func(words []string) []string {
		return filterWords(words, func(w string) bool {
			return utf8.RuneCountInString(w) >= min
		})
	}
}

// RemoveRepeatedCharacters drops words where one character appears more than
// max times in a row.
func RemoveRepeatedCharacters(max int) Step {
	return func(words []string) []string {
		return filterWords(words, func(w string) bool {
			return longestRun(w) <= max
		})
	}
}

func longestRun(w string) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range []rune(w) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = r
	}
	return longest
}

// RemoveDuplicates drops repeated words, keeping the first occurrence.
func RemoveDuplicates(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	return filterWords(words, func(w string) bool {
		if _, ok := seen[w]; ok {
			return false
		}
		seen[w] = struct{}{}
		return true
	})
}

// RemoveNumeric drops words that contain a digit.
func RemoveNumeric(words []string) []string {
	return filterWords(words, func(w string) bool {
		return strings.IndexFunc(w, unicode.IsDigit) == -1
	})
}

// RemoveEmpty drops empty words.
func RemoveEmpty(words []string) []string {
	return filterWords(words, func(w string) bool { return w != "" })
}

// FilterByLength keeps words whose length is in [min, max].
func FilterByLength(min, max int) Step {
	return func(words []string) []string {
		return filterWords(words, func(w string) bool {
			n := utf8.RuneCountInString(w)
			return n >= min && n <= max
		})
	}
}

// RemoveCommonWords drops every word in common.
func RemoveCommonWords(common []string) Step {
	set := make(map[string]struct{}, len(common))
	for _, w := range common {
		set[strings.ToLower(w)] = struct{}{}
	}
	return func(words []string) []string {
		return filterWords(words, func(w string) bool {
			_, ok := set[w]
			return !ok
		})
	}
}
