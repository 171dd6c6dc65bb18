package prompt

import (
	"strings"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// Script is a Prompter that replays canned responses in order. It backs
// tests for flows that would otherwise need a terminal, such as API key
// entry and destructive-action confirmations.
type Script struct {
	responses []string
	next      int

	// Labels records every prompt label asked, in order.
	Labels []string
}

// NewScript creates a Script that answers prompts with the given responses.
func NewScript(responses ...string) *Script {
	return &Script{responses: responses}
}

func (s *Script) pop(label string) (string, error) {
	s.Labels = append(s.Labels, label)
	if s.next >= len(s.responses) {
		return "", errors.ErrNonInteractive
	}
	r := s.responses[s.next]
	s.next++
	return r, nil
}

// Masked implements Prompter.
func (s *Script) Masked(label string) (string, error) {
	return s.pop(label)
}

// Input implements Prompter.
func (s *Script) Input(label string) (string, error) {
	return s.pop(label)
}

// Confirm implements Prompter.
func (s *Script) Confirm(label string, defaultYes bool) (bool, error) {
	r, err := s.pop(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(r) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select implements Prompter. The scripted response must match an option
// value or label.
func (s *Script) Select(label string, options []Option) (string, error) {
	r, err := s.pop(label)
	if err != nil {
		return "", err
	}
	for _, opt := range options {
		if r == opt.Value || r == opt.Label {
			return opt.Value, nil
		}
	}
	return "", errors.NewValidationError("choice", r, "not one of the offered options")
}

// MultiSelect implements Prompter. The scripted response is a
// comma-separated list of option values.
func (s *Script) MultiSelect(label string, options []Option) ([]string, error) {
	r, err := s.pop(label)
	if err != nil {
		return nil, err
	}
	if r == "" {
		return nil, nil
	}

	var values []string
	for _, part := range strings.Split(r, ",") {
		part = strings.TrimSpace(part)
		found := false
		for _, opt := range options {
			if part == opt.Value || part == opt.Label {
				values = append(values, opt.Value)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.NewValidationError("choice", part, "not one of the offered options")
		}
	}
	return values, nil
}
