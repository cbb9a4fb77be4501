// Package ui turns reconcile events into output. It supports terminal
// (styled), text (plain) and JSON formats.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
	"github.com/arthur-debert/dotlink/pkg/ui/json"
	"github.com/arthur-debert/dotlink/pkg/ui/styles"
	"github.com/arthur-debert/dotlink/pkg/ui/terminal"
	"github.com/arthur-debert/dotlink/pkg/ui/text"
)

// Reporter is a reconcile.Reporter that remembers write failures
type Reporter interface {
	reconcile.Reporter
	// Err returns the first error met while writing
	Err() error
}

// Resolve replaces FormatAuto with the format detected for output.
// Writers that are not files get the terminal format.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

// NewReporter creates the reporter for format. verbose only affects the
// terminal and text formats.
func NewReporter(format Format, output io.Writer, verbose bool) (Reporter, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output, verbose), nil
	case FormatText:
		return text.New(output, verbose), nil
	case FormatJSON:
		return json.New(output), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
}

// RenderError writes a fatal error to output in the given format. Terminal
// and text output list the error's details below it, sorted by key.
func RenderError(format Format, output io.Writer, err error) error {
	switch Resolve(format, output) {
	case FormatJSON:
		return json.New(output).RenderError(err)
	case FormatTerminal:
		if _, werr := fmt.Fprintf(output, "%s %v\n", styles.Render("Error", "Error:"), err); werr != nil {
			return werr
		}
		return renderDetails(output, err, styles.Render)
	default:
		if _, werr := fmt.Fprintf(output, "Error: %v\n", err); werr != nil {
			return werr
		}
		return renderDetails(output, err, func(_, s string) string { return s })
	}
}

func renderDetails(output io.Writer, err error, paint text.Painter) error {
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, werr := fmt.Fprintf(output, "  %s %v\n", paint("Muted", k+":"), details[k]); werr != nil {
			return werr
		}
	}
	return nil
}
