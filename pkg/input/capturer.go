package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Capturer displays input prompts to the user, and captures user input from
// stdin.
type Capturer struct {
	// CaretCharacter is printed to indicate to the user that they should
	// provide input. Ex: >
	CaretCharacter string

	// prompt is printed to promptWriter, on its own line above the caret.
	// Ex: "Enter the passphrase to assess:"
	prompt string

	// inputReader is the Reader interface where user input is read from. Should
	// be os.Stdin in production. Helpful when writing tests.
	inputReader io.Reader

	// promptWriter is the Writer interface where prompts for input are printed/
	// written. Should be os.Stdout in production. Helpful when writing tests.
	promptWriter io.Writer
}

// NewCapturer returns a pointer to a new Capturer struct initialized with the
// provided caret character.
func NewCapturer(
	caretCharacter, prompt string,
	inputReader io.Reader, promptWriter io.Writer,
) (*Capturer, error) {
	if utf8.RuneCountInString(caretCharacter) != 1 {
		return nil, fmt.Errorf("caretCharacter must be of length 1 (ideally"+
			" a symbol), got: %s", caretCharacter)
	}

	return &Capturer{
		CaretCharacter: caretCharacter,
		prompt:         prompt,
		inputReader:    inputReader,
		promptWriter:   promptWriter,
	}, nil
}

// CapturePassphrase prompts the user to enter a passphrase, and returns their
// input without its line ending.
func (c *Capturer) CapturePassphrase() (string, error) {
	inputReader := bufio.NewReader(c.inputReader)

	// The log pkg doesn't let you print without a newline char at the end.
	fmt.Fprintf(c.promptWriter, "%s\n%s ", c.prompt,
		c.CaretCharacter)

	userInput, err := inputReader.ReadString('\n')
	if err != nil && (err != io.EOF || userInput == "") {
		return "", err
	}

	// Strip LF and CRLF (Windows) line endings.
	return strings.TrimRight(userInput, "\r\n"), nil
}
