package app

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nchaloult/passgen/pkg/cleaner"
	"github.com/nchaloult/passgen/pkg/passphrase"
	"github.com/nchaloult/passgen/pkg/wordlist"
)

// Config stores settings read from a config file, overridden by command line
// arguments. It's shared by every passgen subcommand.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Wordlist  WordlistConfig  `yaml:"wordlist"`
	Cleaner   CleanerConfig   `yaml:"cleaner"`
}

// GeneratorConfig configures passphrase generation.
type GeneratorConfig struct {
	// Words is the number of words per passphrase, in [2, 16].
	Words int `yaml:"words"`
	// Substitution replaces vowels with symbols in some of the words.
	Substitution bool `yaml:"substitution"`
	// MinLength is exclusive: shorter or equal passphrases are regenerated.
	MinLength int `yaml:"min_length"`
	// MaxLength is inclusive.
	MaxLength int `yaml:"max_length"`
	// MaxAttempts caps regeneration of too-short passphrases.
	MaxAttempts int `yaml:"max_attempts"`
}

// WordlistConfig selects the vocabulary.
type WordlistConfig struct {
	// Language picks words-<language>.txt.
	Language string `yaml:"language"`
	// Dir holds word list files. Empty means use the built-in lists.
	Dir string `yaml:"dir"`
}

// CleanerConfig configures the word list cleaner.
type CleanerConfig struct {
	MinLength   int      `yaml:"min_length"`
	MaxLength   int      `yaml:"max_length"`
	MaxRepeat   int      `yaml:"max_repeat"`
	CommonWords []string `yaml:"common_words"`
}

// DefaultWords is the word count used when none is configured.
const DefaultWords = 2

// DefaultConfig returns a Config with the defaults passgen ships with.
func DefaultConfig() *Config {
	opts := cleaner.DefaultOptions()
	return &Config{
		Generator: GeneratorConfig{
			Words:       DefaultWords,
			MinLength:   passphrase.DefaultMinLength,
			MaxLength:   passphrase.DefaultMaxLength,
			MaxAttempts: passphrase.DefaultMaxAttempts,
		},
		Wordlist: WordlistConfig{
			Language: wordlist.DefaultLanguage,
		},
		Cleaner: CleanerConfig{
			MinLength: opts.MinLength,
			MaxLength: opts.MaxLength,
			MaxRepeat: opts.MaxRepeat,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	g := c.Generator
	if err := (passphrase.Request{WordCount: g.Words}).Validate(); err != nil {
		return fmt.Errorf("generator.words: %w", err)
	}
	if g.MinLength < 0 || g.MinLength >= g.MaxLength {
		return fmt.Errorf("generator.min_length must be in the range [0, %d),"+
			" got: %d", g.MaxLength, g.MinLength)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("generator.max_attempts must be at least 1, got: %d",
			g.MaxAttempts)
	}

	if !wordlist.IsSupported(c.Wordlist.Language) {
		return fmt.Errorf("wordlist.language: %w: %q",
			wordlist.ErrUnsupportedLanguage, c.Wordlist.Language)
	}

	cl := c.Cleaner
	if cl.MinLength < 1 || cl.MinLength > cl.MaxLength {
		return fmt.Errorf("cleaner.min_length must be in the range [1, %d],"+
			" got: %d", cl.MaxLength, cl.MinLength)
	}
	if cl.MaxRepeat < 1 {
		return fmt.Errorf("cleaner.max_repeat must be at least 1, got: %d",
			cl.MaxRepeat)
	}

	return nil
}

// CleanerOptions converts the cleaner section into cleaner.Options.
func (c *Config) CleanerOptions() cleaner.Options {
	return cleaner.Options{
		MinLength:   c.Cleaner.MinLength,
		MaxLength:   c.Cleaner.MaxLength,
		MaxRepeat:   c.Cleaner.MaxRepeat,
		CommonWords: c.Cleaner.CommonWords,
	}
}

// LoadFromFile loads configuration from a YAML file. Settings missing from
// the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// WriteTo writes the configuration to w as YAML.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config: %w", err)
	}

	n, err := w.Write(data)
	return int64(n), err
}
