// Package review holds the accept/reject queue over a fetched batch.
//
// State values are immutable snapshots: every transition returns a new
// State and never writes to the slices of its input.
package review

import (
	"slices"

	"candidate-search/internal/fetcher"
	"candidate-search/internal/models"
)

// Status is the display state derived from a State
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReviewing
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReviewing:
		return "reviewing"
	case StatusExhausted:
		return "exhausted"
	}
	return "unknown"
}

// State is one snapshot of the review queue
type State struct {
	pending  []models.Candidate
	accepted []models.Candidate
	loading  bool
	errMsg   string
}

// Initial is the state before the fetch completes: loading, both lists empty
func Initial() State {
	return State{loading: true}
}

// NewState builds a loaded state directly, mostly for tests and replays
func NewState(pending, accepted []models.Candidate) State {
	return State{
		pending:  slices.Clone(pending),
		accepted: slices.Clone(accepted),
	}
}

// Status reports which of the four display states s is in
func (s State) Status() Status {
	switch {
	case s.loading:
		return StatusLoading
	case s.errMsg != "":
		return StatusError
	case len(s.pending) > 0:
		return StatusReviewing
	default:
		return StatusExhausted
	}
}

// Current returns the head of the pending queue
func (s State) Current() (models.Candidate, bool) {
	if len(s.pending) == 0 {
		return models.Candidate{}, false
	}
	return s.pending[0], true
}

// Pending returns a copy of the unreviewed candidates
func (s State) Pending() []models.Candidate { return slices.Clone(s.pending) }

// Accepted returns a copy of the accepted candidates
func (s State) Accepted() []models.Candidate { return slices.Clone(s.accepted) }

func (s State) PendingLen() int  { return len(s.pending) }
func (s State) AcceptedLen() int { return len(s.accepted) }

// Err returns the user-facing error message, empty unless Status is StatusError
func (s State) Err() string { return s.errMsg }

// Transition maps one snapshot to the next
type Transition func(State) State

// Accept moves the head of pending to the end of accepted.
// It is a no-op when pending is empty.
func Accept(s State) State {
	head, ok := s.Current()
	if !ok {
		return s
	}
	accepted := make([]models.Candidate, len(s.accepted), len(s.accepted)+1)
	copy(accepted, s.accepted)

	next := s
	next.accepted = append(accepted, head)
	next.pending = s.pending[1:]
	return next
}

// Reject drops the head of pending. It is a no-op when pending is empty.
func Reject(s State) State {
	if len(s.pending) == 0 {
		return s
	}
	next := s
	next.pending = s.pending[1:]
	return next
}

// ApplyFetchResult ends loading. A failed fetch leaves both lists empty and
// records the fixed error message; a successful one becomes the pending queue.
func ApplyFetchResult(s State, candidates []models.Candidate, err error) State {
	next := s
	next.loading = false
	if err != nil {
		next.errMsg = fetcher.ErrorMessage
		next.pending = nil
		return next
	}
	next.errMsg = ""
	next.pending = slices.Clone(candidates)
	return next
}

// FetchResult adapts ApplyFetchResult to a Transition
func FetchResult(candidates []models.Candidate, err error) Transition {
	return func(s State) State {
		return ApplyFetchResult(s, candidates, err)
	}
}
