package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// Terminal prompts on the controlling terminal. Prompt text goes to stderr
// so that stdout stays clean for rendered output.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	fd     int
	reader *bufio.Reader
}

// New creates a Terminal reading from stdin and writing prompts to stderr.
func New() *Terminal {
	return &Terminal{
		in:     os.Stdin,
		out:    os.Stderr,
		fd:     int(os.Stdin.Fd()),
		reader: bufio.NewReader(os.Stdin),
	}
}

// NewWithStreams creates a Terminal over arbitrary streams. Masked input
// requires a real terminal and is unavailable in this mode.
func NewWithStreams(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		fd:     -1,
		reader: bufio.NewReader(in),
	}
}

// Masked implements Prompter.
func (t *Terminal) Masked(label string) (string, error) {
	if t.fd < 0 || !term.IsTerminal(t.fd) {
		return "", errors.ErrNonInteractive
	}

	fmt.Fprintf(t.out, "%s: ", label)
	secret, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", errors.WrapIO("read", "terminal", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// Input implements Prompter.
func (t *Terminal) Input(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	return t.readLine()
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(label string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	for {
		fmt.Fprintf(t.out, "%s %s ", label, suffix)
		line, err := t.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
}

// Select implements Prompter. Options are shown as a numbered list and the
// answer may be a number or an exact value.
func (t *Terminal) Select(label string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.NewValidationError("options", nil, "nothing to select from")
	}

	fmt.Fprintln(t.out, label)
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %d. %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(t.out, "Choice [1-%d]: ", len(options))
		line, err := t.readLine()
		if err != nil {
			return "", err
		}

		if idx, ok := parseChoice(line, len(options)); ok {
			return options[idx].Value, nil
		}
		for _, opt := range options {
			if line == opt.Value || line == opt.Label {
				return opt.Value, nil
			}
		}
		fmt.Fprintln(t.out, "Invalid choice.")
	}
}

// MultiSelect implements Prompter. The answer is a comma-separated list of
// numbers; an empty answer selects nothing.
func (t *Terminal) MultiSelect(label string, options []Option) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}

	fmt.Fprintln(t.out, label)
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %d. %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(t.out, "Choices (comma-separated, empty for none): ")
		line, err := t.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}

		values, ok := parseChoices(line, options)
		if ok {
			return values, nil
		}
		fmt.Fprintln(t.out, "Invalid choice.")
	}
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.WrapIO("read", "input", err)
	}
	return strings.TrimSpace(line), nil
}

// parseChoice converts a 1-based numeric answer to a 0-based index.
func parseChoice(s string, n int) (int, bool) {
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}

func parseChoices(s string, options []Option) ([]string, bool) {
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		idx, ok := parseChoice(strings.TrimSpace(part), len(options))
		if !ok {
			return nil, false
		}
		values = append(values, options[idx].Value)
	}
	return values, true
}
