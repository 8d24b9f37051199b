package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nchaloult/passgen/pkg/passphrase"
	"github.com/nchaloult/passgen/pkg/strength"
	"github.com/nchaloult/passgen/pkg/wordlist"
)

// Result is one generated passphrase and its strength.
type Result struct {
	Passphrase string
	Tier       strength.Tier
}

// TierObserver is told about every assessed passphrase. The metrics
// collector implements it alongside passphrase.Observer.
type TierObserver interface {
	ObserveTier(strength.Tier)
}

// GenerateConfig holds everything needed to run the "generate" subcommand.
type GenerateConfig struct {
	request   passphrase.Request
	count     int
	vocab     *wordlist.Vocabulary
	generator *passphrase.Generator
	tiers     TierObserver
	logger    *zap.Logger
}

// NewGenerateConfig returns a pointer to a new GenerateConfig that will
// produce count passphrases. It validates cfg and loads the word list up
// front. observer may be nil.
func NewGenerateConfig(
	cfg *Config, count int, logger *zap.Logger, observer passphrase.Observer,
) (*GenerateConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got: %d", count)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	vocab, err := wordlist.LoadLanguage(cfg.Wordlist.Dir, cfg.Wordlist.Language)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded word list",
		zap.String("language", cfg.Wordlist.Language),
		zap.String("dir", cfg.Wordlist.Dir),
		zap.Int("words", vocab.Len()))

	opts := []passphrase.Option{
		passphrase.WithMinLength(cfg.Generator.MinLength),
		passphrase.WithMaxLength(cfg.Generator.MaxLength),
		passphrase.WithMaxAttempts(cfg.Generator.MaxAttempts),
		passphrase.WithLogger(logger),
	}
	if observer != nil {
		opts = append(opts, passphrase.WithObserver(observer))
	}

	c := &GenerateConfig{
		request: passphrase.Request{
			WordCount:       cfg.Generator.Words,
			UseSubstitution: cfg.Generator.Substitution,
		},
		count:     count,
		vocab:     vocab,
		generator: passphrase.NewGenerator(opts...),
		logger:    logger,
	}
	if t, ok := observer.(TierObserver); ok {
		c.tiers = t
	}

	return c, nil
}

// Run generates and assesses the configured number of passphrases.
func (c *GenerateConfig) Run() ([]Result, error) {
	results := make([]Result, 0, c.count)
	for i := 0; i < c.count; i++ {
		p, err := c.generator.Generate(c.vocab, c.request)
		if err != nil {
			return nil, fmt.Errorf("failed to generate passphrase: %w", err)
		}

		tier := strength.Assess(p)
		if c.tiers != nil {
			c.tiers.ObserveTier(tier)
		}
		results = append(results, Result{Passphrase: p, Tier: tier})
	}

	c.logger.Debug("generated passphrases", zap.Int("count", len(results)))
	return results, nil
}
