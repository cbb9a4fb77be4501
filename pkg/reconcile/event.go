package reconcile

import (
	"github.com/arthur-debert/dotlink/pkg/entry"
)

// Operation names the command being run
type Operation string

const (
	OperationCheck Operation = "check"
	OperationLink  Operation = "link"
	OperationClean Operation = "clean"
)

// Action is what an operation did, or would do in a dry run, for one entry
type Action string

const (
	ActionNone    Action = "none"
	ActionCreate  Action = "create"
	ActionReplace Action = "replace"
	ActionRemove  Action = "remove"
	ActionRefuse  Action = "refuse"
)

// Event is emitted once per entry per operation
type Event struct {
	Operation Operation
	Linkfile  string
	Src       string
	Dst       string
	Status    entry.Status
	Action    Action
	DryRun    bool
	// Err is set when the entry failed: a refused Occupied destination, a
	// failed filesystem call, or a destination that could not be inspected.
	Err error
}

// Failed reports whether the event counts toward the outcome code
func (ev Event) Failed() bool {
	if ev.Err != nil {
		return true
	}
	return ev.Operation == OperationCheck && ev.Status != entry.Healthy
}

// Reporter receives events as entries are processed
type Reporter interface {
	// BeginLinkfile is called before the entries of a linkfile
	BeginLinkfile(op Operation, id string)
	Report(ev Event)
}

// NopReporter discards everything
type NopReporter struct{}

func (NopReporter) BeginLinkfile(Operation, string) {}
func (NopReporter) Report(Event)                    {}
