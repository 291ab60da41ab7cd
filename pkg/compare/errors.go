package compare

import (
	"errors"
	"fmt"

	"github.com/pseudomuto/unitdiff/pkg/codepath"
)

const (
	// Mismatch indicates two leaf values differ, or that exactly one side of
	// an optional value is present.
	Mismatch Kind = iota + 1

	// LengthMismatch indicates two ordered sequences differ in length,
	// detected when one side is exhausted before the other.
	LengthMismatch

	// ExtraOnLeft indicates a named key exists in the left keyed collection
	// but not the right.
	ExtraOnLeft

	// ExtraOnRight indicates a named key exists in the right keyed collection
	// but not the left.
	ExtraOnRight

	// SetDifference indicates an element exists in one unordered set but not
	// the other.
	SetDifference
)

type (
	// Kind classifies a comparison failure. Every failure produced by this
	// package carries exactly one Kind.
	Kind int

	// Error is the single failure type for all comparators. It carries the
	// canonical rendered path at which the divergence was found and a
	// human-readable description of what differed.
	//
	// Comparison is first-failure-wins: a comparator either succeeds or
	// returns exactly one *Error, and enclosing comparators propagate it
	// unchanged.
	Error struct {
		// Kind classifies the failure
		Kind Kind

		// Path is the canonical rendered location of the divergence
		Path string

		// Detail describes what differed, including both values where
		// applicable
		Detail string

		// Left and Right carry the raw renderings of the two differing
		// values for leaf mismatches, so presentation layers can show a
		// proper text diff of multi-line values. Empty for structural
		// failures (missing keys, length differences).
		Left  string
		Right string
	}
)

// String returns the lower-case description of the failure kind.
func (k Kind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case LengthMismatch:
		return "length mismatch"
	case ExtraOnLeft:
		return "extra on left"
	case ExtraOnRight:
		return "extra on right"
	case SetDifference:
		return "set difference"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}

	return fmt.Sprintf("%s in %s: %s", e.Kind, e.Path, e.Detail)
}

func failf(kind Kind, path *codepath.Path, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Path:   path.String(),
		Detail: fmt.Sprintf(format, args...),
	}
}

func failValues(path *codepath.Path, a, b any) *Error {
	return &Error{
		Kind:   Mismatch,
		Path:   path.String(),
		Detail: fmt.Sprintf("%#v != %#v", a, b),
		Left:   fmt.Sprintf("%v", a),
		Right:  fmt.Sprintf("%v", b),
	}
}

// KindOf returns the failure kind carried by err, or zero if err is not a
// comparison failure (including nil).
func KindOf(err error) Kind {
	var cmpErr *Error
	if errors.As(err, &cmpErr) {
		return cmpErr.Kind
	}

	return 0
}

// PathOf returns the canonical path carried by err, or the empty string if
// err is not a comparison failure (including nil).
func PathOf(err error) string {
	var cmpErr *Error
	if errors.As(err, &cmpErr) {
		return cmpErr.Path
	}

	return ""
}
