package tally

import "fmt"

// LoadPolicy defines what a load does with the records read before an error.
type LoadPolicy int

const (
	// Atomic decodes the whole file before appending anything: on error the
	// ledger is left unchanged.
	Atomic LoadPolicy = iota
	// BestEffort appends every record read before the first error, then
	// reports that error.
	BestEffort
)

func (p LoadPolicy) String() string {
	switch p {
	case Atomic:
		return "atomic"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

// ParseLoadPolicy parses a string into a LoadPolicy.
func ParseLoadPolicy(s string) (LoadPolicy, error) {
	switch s {
	case "atomic":
		return Atomic, nil
	case "best-effort":
		return BestEffort, nil
	default:
		return 0, fmt.Errorf("unknown load policy: %q", s)
	}
}

// LoadOptions configures how a ledger file is read.
// The zero value is the default: atomic, blank lines skipped.
type LoadOptions struct {
	Policy LoadPolicy
	// RejectBlankLines turns blank or whitespace-only lines into parse errors
	// instead of skipping them.
	RejectBlankLines bool
}
