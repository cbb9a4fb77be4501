package entry

import "fmt"

// Status classifies the destination of an Entry relative to its source.
// The four values are exhaustive and mutually exclusive.
type Status int

const (
	// Healthy: dst is a symlink resolving to src. Nothing to do.
	Healthy Status = iota
	// Unlinked: nothing exists at dst.
	Unlinked
	// Mismatched: dst is a symlink to somewhere else.
	Mismatched
	// Occupied: dst is a regular file or directory. Never overwritten.
	Occupied
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case Healthy:
		return "Healthy"
	case Unlinked:
		return "Unlinked"
	case Mismatched:
		return "Mismatched"
	case Occupied:
		return "Occupied"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
