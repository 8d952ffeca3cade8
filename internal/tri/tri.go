// Package tri defines the three-value predicate result and the
// five-value player answer alphabet used throughout the engine.
// Both are small closed sum types, never booleans or nilable strings,
// per the design note in spec §9.
package tri

import "fmt"

// Tri is the result of evaluating a predicate against a film: True,
// False, or Unknown (the underlying attribute is missing, not "no").
type Tri int

const (
	Unknown Tri = iota
	True
	False
)

// String implements fmt.Stringer.
func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// FromBool lifts a plain boolean into Tri(True)/Tri(False). Use this at
// the boundary where an attribute is known to be present.
func FromBool(b bool) Tri {
	if b {
		return True
	}
	return False
}

// Answer is the five-value alphabet a player may give for any question.
// Undo is handled by the session layer and never reaches the core.
type Answer int

const (
	Yes Answer = iota
	No
	AnswerUnknown
	ProbablyYes
	ProbablyNo
)

// String implements fmt.Stringer.
func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	case ProbablyYes:
		return "probably_yes"
	case ProbablyNo:
		return "probably_no"
	default:
		return "unknown"
	}
}

// ParseAnswer converts a wire-level token into an Answer. It accepts the
// canonical tokens plus the short forms the original engine used
// (y/n/?/py/pn), returning an error for anything outside the alphabet
// so the core is never reached with an invalid answer (spec §7).
func ParseAnswer(s string) (Answer, error) {
	switch s {
	case "yes", "y", "Yes", "YES":
		return Yes, nil
	case "no", "n", "No", "NO":
		return No, nil
	case "unknown", "?", "Unknown":
		return AnswerUnknown, nil
	case "probably_yes", "py", "ProbablyYes":
		return ProbablyYes, nil
	case "probably_no", "pn", "ProbablyNo":
		return ProbablyNo, nil
	default:
		return 0, fmt.Errorf("unrecognized answer token: %q", s)
	}
}
