package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr error
	}{
		{"valid", []string{"apple", "mango"}, nil},
		{"empty word", []string{"apple", ""}, ErrEmptyWord},
		{"duplicate", []string{"apple", "mango", "apple"}, ErrDuplicateWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVocabulary(tt.words)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.words), v.Len())
		})
	}
}

func TestVocabularyIsImmutable(t *testing.T) {
	words := []string{"apple", "mango"}
	v, err := NewVocabulary(words)
	require.NoError(t, err)

	words[0] = "changed"
	assert.Equal(t, "apple", v.At(0))

	out := v.Words()
	out[1] = "changed"
	assert.Equal(t, "mango", v.At(1))
}

func TestLoad(t *testing.T) {
	// The second "cafe" is written with a combining accent and must collapse
	// into the precomposed form.
	input := "  apple\r\nmango\n\n\tgrape \napple\ncaf\u00e9\ncafe\u0301\n"

	v, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "grape", "caf\u00e9"}, v.Words())
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader("\n   \n"))
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words-en.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbravo\n"), 0644))

	v, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestLoadLanguage(t *testing.T) {
	t.Run("built-in lists", func(t *testing.T) {
		for _, lang := range Languages() {
			v, err := LoadLanguage("", lang)
			require.NoError(t, err, lang)
			assert.GreaterOrEqual(t, v.Len(), 16, lang)
		}
	})

	t.Run("default language", func(t *testing.T) {
		v, err := LoadLanguage("", "")
		require.NoError(t, err)
		en, err := LoadLanguage("", "en")
		require.NoError(t, err)
		assert.Equal(t, en.Words(), v.Words())
	})

	t.Run("from directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "words-es.txt"),
			[]byte("hola\nadios\n"), 0644))

		v, err := LoadLanguage(dir, "es")
		require.NoError(t, err)
		assert.Equal(t, []string{"hola", "adios"}, v.Words())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := LoadLanguage("", "fr")
		assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	})
}
