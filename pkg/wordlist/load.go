// Package wordlist loads the vocabularies passphrases are built from. Word
// lists are UTF-8 text files with one word per line, as written by the cleaner.
package wordlist

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// ErrUnsupportedLanguage is returned for languages without a word list.
var ErrUnsupportedLanguage = errors.New("unsupported language")

//go:embed words-en.txt words-es.txt
var builtin embed.FS

// Languages returns the language codes that have a word list.
func Languages() []string {
	return []string{"en", "es"}
}

// IsSupported reports whether lang has a word list.
func IsSupported(lang string) bool {
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// FileName returns the name of the word list file for lang.
func FileName(lang string) string {
	return fmt.Sprintf("words-%s.txt", lang)
}

// Load reads one word per line from r. Surrounding whitespace and blank lines
// are dropped, words are NFC-normalized, and repeats after the first
// occurrence are skipped.
func Load(r io.Reader) (*Vocabulary, error) {
	var words []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return NewVocabulary(words)
}

// LoadFile reads a word list from the file at path.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %q: %w", path, err)
	}
	defer f.Close()

	v, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %q: %w", path, err)
	}

	return v, nil
}

// LoadLanguage returns the vocabulary for lang. If dir is empty the word list
// compiled into the binary is used, otherwise words-<lang>.txt is read from
// dir.
func LoadLanguage(dir, lang string) (*Vocabulary, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	if !IsSupported(lang) {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedLanguage,
			lang, strings.Join(Languages(), ", "))
	}

	if dir != "" {
		return LoadFile(filepath.Join(dir, FileName(lang)))
	}

	f, err := builtin.Open(FileName(lang))
	if err != nil {
		return nil, fmt.Errorf("failed to open built-in word list for %q: %w",
			lang, err)
	}
	defer f.Close()

	return Load(f)
}
