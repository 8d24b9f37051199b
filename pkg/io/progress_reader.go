package io

import (
	"fmt"
	"io"

	"github.com/alsm/ioprogress"
)

// DefaultBarLen is the width of progress bars drawn by OpenFile.
const DefaultBarLen = 40

// NewProgressReader returns a Reader which, when read from, draws a progress
// bar for a read of size bytes to w.
func NewProgressReader(size int64, reader io.Reader, barLen uint, w io.Writer) io.Reader {
	// Inspired by the documented example on ioprogress.DrawTextFormatBar().
	bar := ioprogress.DrawTextFormatBar(int64(barLen))
	return &ioprogress.Reader{
		Reader: reader,
		Size:   size,
		DrawFunc: ioprogress.DrawTerminalf(
			w,
			func(progress, total int64) string {
				return fmt.Sprintf(
					"%s %s",
					bar(progress, total),
					ioprogress.DrawTextFormatBytes(progress, total),
				)
			},
		),
	}
}
