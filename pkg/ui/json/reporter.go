// Package json writes one JSON object per line for every event
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
)

// Record is the JSON shape of an event
type Record struct {
	Operation string `json:"operation"`
	Linkfile  string `json:"linkfile"`
	Status    string `json:"status"`
	Action    string `json:"action"`
	Src       string `json:"src"`
	Dst       string `json:"dst"`
	DryRun    bool   `json:"dry_run"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// NewRecord converts an event
func NewRecord(ev reconcile.Event) Record {
	rec := Record{
		Operation: string(ev.Operation),
		Linkfile:  ev.Linkfile,
		Status:    ev.Status.String(),
		Action:    string(ev.Action),
		Src:       ev.Src,
		Dst:       ev.Dst,
		DryRun:    ev.DryRun,
	}
	if ev.Err != nil {
		rec.Error = ev.Err.Error()
		rec.ErrorCode = string(errors.GetErrorCode(ev.Err))
	}
	return rec
}

// Reporter encodes events as they arrive. Output is verbose-independent:
// every event is written.
type Reporter struct {
	encoder *json.Encoder
	err     error
}

// New creates a JSON Reporter
func New(w io.Writer) *Reporter {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return &Reporter{encoder: encoder}
}

// Err returns the first encoding error, if any
func (r *Reporter) Err() error {
	return r.err
}

// BeginLinkfile implements reconcile.Reporter. Every record already
// carries its linkfile.
func (r *Reporter) BeginLinkfile(reconcile.Operation, string) {}

// Report implements reconcile.Reporter
func (r *Reporter) Report(ev reconcile.Event) {
	if r.err != nil {
		return
	}
	r.err = r.encoder.Encode(NewRecord(ev))
}

// RenderError writes a fatal error as a single object
func (r *Reporter) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error":      err.Error(),
		"error_code": string(errors.GetErrorCode(err)),
	})
}

var _ reconcile.Reporter = (*Reporter)(nil)
