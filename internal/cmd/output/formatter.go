// Package output provides formatters for command output.
//
// Every command renders its result through this package. Formatting is the
// last step before process output, so no formatter here returns a
// serialization error for any input: the worst case degrades (YAML falls
// back to JSON, unexpected types fall back to best-effort stringification).
// Only writer I/O errors propagate.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/v0-cli/pkg/logging"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TableFormatter{}
	}
}

// Render formats data with the given format and writes it to w.
// Rendering the same data and format twice produces byte-identical output.
func Render(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}

// JSONFormatter outputs pretty-printed JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
// Key order follows struct field order and Record field order.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	if err := encoder.Encode(data); err != nil {
		// Unserializable input still renders something.
		_, werr := fmt.Fprintln(w, Stringify(data))
		return werr
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format. A serialization failure falls back
// to the JSON rendering rather than surfacing an error.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		logging.Debug().Err(err).Msg("yaml marshal failed, falling back to json")
		jsonFormatter := &JSONFormatter{Indent: "  "}
		return jsonFormatter.Format(w, data)
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs a plain-text table view.
type TableFormatter struct{}

// Format outputs data in table format. The renderable value is classified
// once into a scalar, record, list-of-scalars, or list-of-records variant,
// and each variant has exactly one rendering branch.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	v := Classify(data)

	switch v.Kind {
	case KindRecordList:
		if len(v.Records) == 0 {
			return renderNoItems(w)
		}
		return renderRecordList(w, v.Records)
	case KindScalarList:
		if len(v.Scalars) == 0 {
			return renderNoItems(w)
		}
		return renderScalarList(w, v.Scalars)
	case KindRecord:
		return renderRecord(w, v.Record)
	default:
		_, err := fmt.Fprintln(w, Stringify(v.Scalar))
		return err
	}
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}
