// Package gate decides whether a set of file changes may enter a repository
// It filters the changes down to structured documents, fetches each one and
// runs a syntax checker over it, stopping at the first failure
package gate

import (
	"fmt"
	"iter"
	"strings"
)

// ChangeKind classifies what a change did to a path
type ChangeKind uint8

const (
	// KindOther covers copies, type changes and anything a host reports we do not model
	KindOther ChangeKind = iota
	// KindAdded is a new path
	KindAdded
	// KindModified is an existing path with new content
	KindModified
	// KindRemoved is a deleted path
	KindRemoved
	// KindRenamed is a path moved from elsewhere
	KindRenamed
)

func (k ChangeKind) String() string {
	switch k {
	case KindAdded:
		return "added"
	case KindModified:
		return "modified"
	case KindRemoved:
		return "removed"
	case KindRenamed:
		return "renamed"
	default:
		return "other"
	}
}

// ParseKind maps a host status word to a ChangeKind
// unknown words map to KindOther
func ParseKind(s string) ChangeKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "added", "add", "a":
		return KindAdded
	case "modified", "modify", "changed", "m":
		return KindModified
	case "removed", "deleted", "delete", "d":
		return KindRemoved
	case "renamed", "move", "moved", "r":
		return KindRenamed
	default:
		return KindOther
	}
}

// Change is one path touched by a push or merge
type Change struct {
	Path string
	Kind ChangeKind
}

func (c Change) String() string { return fmt.Sprintf("%s %s", c.Kind, c.Path) }

// Revision is an opaque commit identifier
type Revision string

// IsZero reports whether r is empty or the all-zero id hosts use for a missing side of a ref update
func (r Revision) IsZero() bool {
	return strings.Trim(string(r), "0") == ""
}

// RepoRef is an opaque repository identity handed back to the fetcher
type RepoRef string

// Changes is a lazy, forward-only change sequence
// a non nil error ends validation as an infrastructure failure
type Changes = iter.Seq2[Change, error]

// Input is one validation request
type Input struct {
	Repo     RepoRef
	Revision Revision
	Changes  Changes
}

// Verdict is the terminal state of a validation
type Verdict uint8

const (
	// Accepted means every eligible change parsed
	Accepted Verdict = iota
	// Rejected means an eligible change failed to parse
	Rejected
	// Failed means content or the change list could not be read
	Failed
	// Aborted means the caller cancelled before a decision
	Aborted
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Failed:
		return "error"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Outcome is the result of Validate
// Path, Grammar and Diagnostic are set for Rejected, Err for Failed and Aborted
type Outcome struct {
	Verdict    Verdict
	Path       string
	Grammar    string
	Diagnostic string
	Err        error

	// Checked counts documents handed to the checker
	Checked int
	// Skipped counts changes dropped by the policy or empty content
	Skipped int
}

// OK reports whether the outcome lets the operation proceed
func (o Outcome) OK() bool { return o.Verdict == Accepted }

// SliceChanges adapts a fixed slice to a change sequence
func SliceChanges(cs []Change) Changes {
	return func(yield func(Change, error) bool) {
		for _, c := range cs {
			if !yield(c, nil) {
				return
			}
		}
	}
}
