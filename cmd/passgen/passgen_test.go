package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nchaloult/passgen/pkg/app"
	"github.com/nchaloult/passgen/pkg/passphrase"
)

// execute runs the CLI with args and returns what it wrote to stdout and
// stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := execute(t, "", "generate", "3", "true", "--count", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Generated Passphrase: "))
	assert.Equal(t, 2, strings.Count(out, "This passphrase is considered: "))
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if p, ok := strings.CutPrefix(line, "Generated Passphrase: "); ok {
			assert.Len(t, strings.Split(p, " "), 3)
		}
	}
}

func TestGenerateCommandSpanish(t *testing.T) {
	out, _, err := execute(t, "", "generate", "es", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Fraseclave Generada: ")
	assert.Contains(t, out, "Esta fraseclave se considera: ")
}

func TestGenerateCommandErrors(t *testing.T) {
	_, _, err := execute(t, "", "generate", "bogus")
	assert.ErrorContains(t, err, "unrecognized argument")

	_, _, err = execute(t, "", "generate", "1")
	assert.ErrorIs(t, err, passphrase.ErrInvalidWordCount)

	_, _, err = execute(t, "", "generate", "--words", "17")
	assert.ErrorIs(t, err, passphrase.ErrInvalidWordCount)

	_, _, err = execute(t, "", "generate", "4", "true", "en", "extra")
	assert.Error(t, err)
}

func TestGenerateCommandDefaultsToTwoWords(t *testing.T) {
	out, _, err := execute(t, "", "generate")
	require.NoError(t, err)
	p, ok := strings.CutPrefix(strings.Split(out, "\n")[0], "Generated Passphrase: ")
	require.True(t, ok)
	assert.Len(t, strings.Split(p, " "), 2)
}

func TestGenerateCommandMetrics(t *testing.T) {
	_, stderr, err := execute(t, "", "generate", "--metrics", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "passgen_passphrase_length")
	assert.Contains(t, stderr, "passgen_strength_assessments_total")
}

func TestApplyGenerateArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantWords int
		wantSub   bool
		wantLang  string
	}{
		{"none", nil, 2, false, "en"},
		{"words only", []string{"6"}, 6, false, "en"},
		{"any order", []string{"es", "TRUE", "5"}, 5, true, "es"},
		{"first language wins", []string{"es", "en"}, 2, false, "es"},
		{"explicit false", []string{"false"}, 2, false, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			require.NoError(t, applyGenerateArgs(cfg, tt.args))
			assert.Equal(t, tt.wantWords, cfg.Generator.Words)
			assert.Equal(t, tt.wantSub, cfg.Generator.Substitution)
			assert.Equal(t, tt.wantLang, cfg.Wordlist.Language)
		})
	}
}

func TestCheckCommand(t *testing.T) {
	out, _, err := execute(t, "", "check", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "This passphrase is considered: Weak")
	assert.Contains(t, out, "Missing: length, uppercase, digit, special")

	out, _, err = execute(t, "", "check", "Correct", "H0rse", "B@ttery")
	require.NoError(t, err)
	assert.Contains(t, out, "This passphrase is considered: Very Strong")
	assert.NotContains(t, out, "Missing:")
}

func TestCheckCommandPrompts(t *testing.T) {
	out, _, err := execute(t, "mango\n", "check", "--lang", "es")
	require.NoError(t, err)
	assert.Contains(t, out, "Introduce la fraseclave a evaluar:")
	assert.NotContains(t, out, "Enter the")
	assert.Contains(t, out, "Esta fraseclave se considera: Weak")
}

func TestCleanCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.txt")
	outPath := filepath.Join(dir, "words-en.txt")
	require.NoError(t, os.WriteFile(in, []byte("Apple\nbrrr\nMango!\nox\n"), 0644))

	out, stderr, err := execute(t, "", "clean", "--progress", outPath, in)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 of 4 words kept)")
	assert.NotEmpty(t, stderr)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "apple\nmango\n", string(got))

	_, _, err = execute(t, "", "clean", outPath)
	assert.Error(t, err)
}

func TestCleanCommandFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("apple\nmango\nkiwi\n"), 0644))

	_, _, err := execute(t, "", "clean", "--common", "mango",
		"--min-length", "5", outPath, in)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "apple\n", string(got))
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator:\n  words: 6\n"), 0644))

	out, _, err := execute(t, "", "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "words: 6")
	assert.Contains(t, out, "language: en")

	out, _, err = execute(t, "", "--config", path, "generate")
	require.NoError(t, err)
	p, ok := strings.CutPrefix(strings.Split(out, "\n")[0], "Generated Passphrase: ")
	require.True(t, ok)
	assert.Len(t, strings.Split(p, " "), 6)

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "none.yaml"), "config")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateFlagsOverrideArgsAndConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passgen.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("generator:\n  words: 3\n  substitution: true\n"), 0644))

	out, _, err := execute(t, "", "--config", path,
		"generate", "5", "true", "--substitute=false", "--words", "4", "--count", "20")
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		p, ok := strings.CutPrefix(line, "Generated Passphrase: ")
		if !ok {
			continue
		}
		assert.Len(t, strings.Split(p, " "), 4)
		assert.False(t, strings.ContainsAny(p, "@31µ0"),
			"substitution was turned off by flag, got: %q", p)
	}
}
