// Package prompt provides interactive terminal prompts behind a capability
// interface, so commands that need user input stay testable without a
// real terminal.
package prompt

// Option is one selectable choice in a Select or MultiSelect prompt.
type Option struct {
	// Label is the human-readable text shown to the user.
	Label string
	// Value is returned when the option is chosen.
	Value string
}

// Prompter is the seam between commands and the terminal. Production code
// uses Terminal; tests use Script.
type Prompter interface {
	// Masked asks for a secret without echoing it.
	Masked(label string) (string, error)

	// Input asks for a single line of text.
	Input(label string) (string, error)

	// Confirm asks a yes/no question, returning defaultYes on empty input.
	Confirm(label string, defaultYes bool) (bool, error)

	// Select asks the user to pick one option, returning its Value.
	Select(label string, options []Option) (string, error)

	// MultiSelect asks the user to pick any number of options.
	MultiSelect(label string, options []Option) ([]string, error)
}
