// Package format renders lookup results for the command line.
package format

import (
	"fmt"
	"strings"

	"github.com/s0up4200/eandb/eandb"
)

// Output selects a formatter
type Output string

const (
	OutputConsole Output = "console"
	OutputJSON    Output = "json"
)

// Formatter renders a batch of lookup results
type Formatter interface {
	FormatResults(results []eandb.Result) (string, error)
}

// ParseOutput accepts "console" (or "text") and "json"
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console", "text":
		return OutputConsole, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want console or json)", s)
	}
}

// New returns the formatter for an output mode
func New(output Output, language string) Formatter {
	if output == OutputJSON {
		return NewJSONFormatter()
	}
	return NewConsoleFormatter(language)
}
