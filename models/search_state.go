// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the position of the search widget in its per-cycle state machine.
//
//	Idle -> Typing -> Debouncing -> Loading -> {Open, Closed, Failed}
//
// Any phase returns to Typing on new input; Open, Closed and Failed are
// terminal until the next input or an explicit clear.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTyping
	PhaseDebouncing
	PhaseLoading
	PhaseOpen
	PhaseClosed
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTyping:
		return "typing"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseLoading:
		return "loading"
	case PhaseOpen:
		return "open"
	case PhaseClosed:
		return "closed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SearchState is the state contract consumed by the presentational layer.
//
// Invariants maintained by the search coordinator:
//   - DropdownOpen implies len(Results) > 0 and Error == nil;
//   - a Term shorter than the minimum length implies empty Results and a
//     closed dropdown.
type SearchState struct {
	// Term is the current input text; nil before the first keystroke and
	// after clear.
	Term *string

	// Results holds the last successful lookup. It survives item selection
	// and is reset on the next edit or clear.
	Results []Address

	IsLoading    bool
	Error        *string
	DropdownOpen bool
	Phase        Phase
}

// TermValue returns the current term or an empty string when it is unset.
func (s SearchState) TermValue() string {
	if s.Term == nil {
		return ""
	}
	return *s.Term
}

// ErrorValue returns the current error message or an empty string.
func (s SearchState) ErrorValue() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

// Clone returns a deep copy that does not share the Results backing array or
// the Term/Error pointers with s.
func (s SearchState) Clone() SearchState {
	out := s
	if s.Term != nil {
		t := *s.Term
		out.Term = &t
	}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	out.Results = make([]Address, len(s.Results))
	copy(out.Results, s.Results)
	return out
}
