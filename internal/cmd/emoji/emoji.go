// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

const (
	// Success represents successful completion of an operation.
	// Used for: created resources, saved configuration, completed deployments.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed API calls, missing API keys, validation errors.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: timeouts that degrade to a retry hint, deprecations.
	Warning = "!"

	// Info represents informational messages.
	// Used for: general information, tips, next-step hints.
	Info = "i"

	// Unknown represents unknown or indeterminate states.
	// Used for: deployment statuses the CLI does not recognize.
	Unknown = "?"
)
