package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nchaloult/passgen/pkg/cleaner"
	pio "github.com/nchaloult/passgen/pkg/io"
)

// CleanConfig holds everything needed to run the "clean" subcommand.
type CleanConfig struct {
	inputs []string
	output string
	opts   cleaner.Options
	logger *zap.Logger
}

// NewCleanConfig returns a pointer to a new CleanConfig that cleans inputs
// into output. Inputs may be glob patterns.
func NewCleanConfig(
	cfg *Config, inputs []string, output string, logger *zap.Logger,
) (*CleanConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one input file is required")
	}
	if output == "" {
		return nil, fmt.Errorf("an output file is required")
	}

	inputs, err := pio.ExpandPaths(inputs)
	if err != nil {
		return nil, err
	}

	// Make sure the files we want to clean exist and we have access to them.
	for _, in := range inputs {
		if err := pio.IsFileAccessible(in); err != nil {
			return nil, err
		}
		if in == output {
			return nil, fmt.Errorf("output %s would overwrite an input", output)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CleanConfig{
		inputs: inputs,
		output: output,
		opts:   cfg.CleanerOptions(),
		logger: logger,
	}, nil
}

// Run cleans the inputs and writes the output file. If progress isn't nil,
// progress bars are drawn to it.
func (c *CleanConfig) Run(ctx context.Context, progress io.Writer) (cleaner.Stats, error) {
	c.logger.Info("cleaning word lists",
		zap.Strings("inputs", c.inputs), zap.String("output", c.output))

	return cleaner.CleanFiles(ctx, c.inputs, c.output, c.opts, progress, c.logger)
}
