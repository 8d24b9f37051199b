package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// progressFile pairs a progress-drawing Reader with the file it reads from, so
// the file can still be closed.
type progressFile struct {
	io.Reader
	f *os.File
}

func (p *progressFile) Close() error {
	return p.f.Close()
}

// OpenFile opens the file at path for reading. If progress isn't nil, reads
// draw a progress bar to it. Draw to stderr so that the bar is displayed even
// when stdout is piped someplace else.
func OpenFile(path string, progress io.Writer) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return f, nil
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to retrieve info about the file %s: %w",
			path, err)
	}

	return &progressFile{
		Reader: NewProgressReader(info.Size(), f, DefaultBarLen, progress),
		f:      f,
	}, nil
}

// WriteLines writes each line to w followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
