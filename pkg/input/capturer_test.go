package input

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestCapturePassphrase(t *testing.T) {
	tests := []struct {
		stubbedReader                      io.Reader
		caretChar, passphraseWant, prompt string
	}{
		// CRLF (Windows) line endings.
		{
			strings.NewReader("foo bar\r\n"),
			">",
			"foo bar",
			"Enter the passphrase to assess:",
		},
		// LF (Unix-like) line endings.
		{
			strings.NewReader("foo bar\n"),
			">",
			"foo bar",
			"Enter the passphrase to assess:",
		},
		// No trailing newline, e.g. piped input.
		{
			strings.NewReader("h3ll0 W0rld"),
			"»",
			"h3ll0 W0rld",
			"Introduce la fraseclave a evaluar:",
		},
		// Only the first line is read.
		{
			strings.NewReader("first\nsecond\n"),
			"$",
			"first",
			"Enter the passphrase to assess:",
		},
	}

	for _, c := range tests {
		var stubbedWriter bytes.Buffer
		capturer, err := NewCapturer(
			c.caretChar,
			c.prompt,
			c.stubbedReader,
			&stubbedWriter,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		passphraseGot, err := capturer.CapturePassphrase()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if passphraseGot != c.passphraseWant {
			t.Errorf("CapturePassphrase() returned an unexpected result,"+
				" got: %q, want: %q", passphraseGot, c.passphraseWant)
		}

		promptMsgGot := stubbedWriter.String()
		promptMsgWant := fmt.Sprintf("%s\n%s ", c.prompt,
			c.caretChar)
		if promptMsgGot != promptMsgWant {
			t.Errorf("unexpected prompt message, got: %q, want: %q",
				promptMsgGot, promptMsgWant)
		}
	}
}

func TestCapturePassphraseEmptyInput(t *testing.T) {
	capturer, err := NewCapturer(">", "Enter the passphrase to assess:",
		strings.NewReader(""), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := capturer.CapturePassphrase(); err != io.EOF {
		t.Errorf("unexpected error, got: %v, want: %v", err, io.EOF)
	}
}

func TestNewCapturerRejectsLongCarets(t *testing.T) {
	for _, caret := range []string{"", ">>", "->"} {
		if _, err := NewCapturer(caret, "x", strings.NewReader(""),
			io.Discard); err == nil {
			t.Errorf("expected an error for caret %q", caret)
		}
	}
}
