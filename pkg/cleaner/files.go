package cleaner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	pio "github.com/nchaloult/passgen/pkg/io"
)

// Stats summarizes a cleaning run.
type Stats struct {
	// Read is the number of lines read across all inputs.
	Read int
	// Kept is the number of words written to the output.
	Kept int
}

// CleanFiles reads every input concurrently, cleans their combined lines, and
// writes the result to output, one word per line. Inputs are combined in the
// order given. If progress isn't nil, a progress bar is drawn to it for each
// input.
func CleanFiles(
	ctx context.Context, inputs []string, output string, opts Options,
	progress io.Writer, logger *zap.Logger,
) (Stats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if progress != nil {
		progress = &lockedWriter{w: progress}
	}

	lines := make([][]string, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range inputs {
		g.Go(func() error {
			l, err := readLines(ctx, path, progress)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			logger.Debug("read raw word list",
				zap.String("path", path), zap.Int("lines", len(l)))
			lines[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var all []string
	for _, l := range lines {
		all = append(all, l...)
	}
	cleaned := Clean(all, opts)

	out, err := os.Create(output)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := pio.WriteLines(out, cleaned); err != nil {
		out.Close()
		return Stats{}, fmt.Errorf("failed to write %s: %w", output, err)
	}
	if err := out.Close(); err != nil {
		return Stats{}, fmt.Errorf("failed to write %s: %w", output, err)
	}

	stats := Stats{Read: len(all), Kept: len(cleaned)}
	logger.Info("cleaned word list",
		zap.String("output", output),
		zap.Int("read", stats.Read),
		zap.Int("kept", stats.Kept))

	return stats, nil
}

func readLines(ctx context.Context, path string, progress io.Writer) ([]string, error) {
	f, err := pio.OpenFile(path, progress)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(lines)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// lockedWriter serializes writes from the per-input progress bars.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
