package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
//
// An empty prompt prints only the "> " marker.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	line, err := getLine(reader, prompt, w)
	return strings.TrimSpace(line), err
}

// GetLine is GetSimpleText for free text: leading indentation is kept and
// only trailing whitespace, including the line terminator, is removed.
func GetLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	line, err := getLine(reader, prompt, w)
	return strings.TrimRight(line, " \t\r\n"), err
}

// GetPassword prints prompt to w and reads a password from the terminal fd
// without echo. A newline is printed after the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(fd int, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetPasswordLine reads a password from reader when stdin is not a terminal
// (pipes, scripts). Only the line terminator is removed.
func GetPasswordLine(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	line, err := reader.ReadString('\n')
	fmt.Fprintln(w)
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func getLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	marker := "> "
	if prompt != "" {
		marker = prompt + "\n> "
	}
	if _, err := fmt.Fprint(w, marker); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
