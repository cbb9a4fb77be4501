// Package text writes events as plain lines, one entry at a time
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
)

// Painter styles s with the named style. Names: Header, Success, Error,
// Warning, Muted, FilePath, DryRun.
type Painter func(style, s string) string

func plain(_, s string) string { return s }

// Reporter writes the line layout. Problems are always written; verbose
// adds loaded linkfiles and entries that needed nothing or succeeded.
type Reporter struct {
	w       io.Writer
	verbose bool
	paint   Painter
	err     error
}

// New creates an unstyled Reporter
func New(w io.Writer, verbose bool) *Reporter {
	return NewStyled(w, verbose, nil)
}

// NewStyled creates a Reporter that passes every token through paint
func NewStyled(w io.Writer, verbose bool, paint Painter) *Reporter {
	if paint == nil {
		paint = plain
	}
	return &Reporter{w: w, verbose: verbose, paint: paint}
}

// Err returns the first write error, if any
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// BeginLinkfile implements reconcile.Reporter
func (r *Reporter) BeginLinkfile(_ reconcile.Operation, id string) {
	if r.verbose {
		r.printf("%s\n", r.paint("Header", fmt.Sprintf("Loading %s ...", id)))
	}
}

// Report implements reconcile.Reporter
func (r *Reporter) Report(ev reconcile.Event) {
	if ev.Failed() {
		r.failure(ev)
		return
	}
	if !r.verbose {
		return
	}

	dst := r.paint("FilePath", ev.Dst)
	switch ev.Operation {
	case reconcile.OperationCheck:
		r.printf("%s %s\n  %s %s\n", r.paint("Success", "✓"), dst, r.paint("Muted", "=>"), ev.Src)

	case reconcile.OperationLink:
		if ev.Action == reconcile.ActionNone {
			r.printf("%s\n  %s\n", dst, r.paint("Muted", "the link has already existed."))
			return
		}
		r.printf("%s%s\n  %s %s\n", dst, r.dryRunMark(ev), r.paint("Muted", "=>"), ev.Src)

	case reconcile.OperationClean:
		if ev.Action == reconcile.ActionRemove {
			r.printf("unlink %s%s\n", dst, r.dryRunMark(ev))
		}
	}
}

func (r *Reporter) failure(ev reconcile.Event) {
	r.printf("%s %s (%s)\n", r.paint("Error", "✘"), r.paint("FilePath", ev.Dst), Kind(ev))
	if ev.Err != nil && !errors.IsErrorCode(ev.Err, errors.ErrOccupied) {
		r.printf("  %s\n", r.paint("Warning", ev.Err.Error()))
	}
}

func (r *Reporter) dryRunMark(ev reconcile.Event) string {
	if !ev.DryRun {
		return ""
	}
	return " " + r.paint("DryRun", "(dry run)")
}

// Kind names what is wrong with a failed event: the entry status for an
// audit or a refused Occupied destination, the error code otherwise.
func Kind(ev reconcile.Event) string {
	if ev.Err == nil || errors.IsErrorCode(ev.Err, errors.ErrOccupied) {
		return ev.Status.String()
	}
	return string(errors.GetErrorCode(ev.Err))
}

var _ reconcile.Reporter = (*Reporter)(nil)
