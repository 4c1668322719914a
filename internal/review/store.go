package review

// Observer is notified after every applied transition
type Observer func(prev, next State)

// Store owns the current State and runs transitions through it.
// It is not safe for concurrent use; the UI loop is its only caller.
type Store struct {
	state     State
	observers []Observer
	closed    bool
}

// NewStore creates a store in the initial loading state
func NewStore() *Store {
	return &Store{state: Initial()}
}

// State returns the current snapshot
func (s *Store) State() State {
	return s.state
}

// Subscribe registers an observer. Observers run in registration order.
func (s *Store) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Dispatch applies t, then notifies observers. After Close it does nothing.
func (s *Store) Dispatch(t Transition) State {
	if s.closed {
		return s.state
	}
	prev := s.state
	s.state = t(prev)
	for _, o := range s.observers {
		o(prev, s.state)
	}
	return s.state
}

// Close tears the store down; results that arrive later are discarded
func (s *Store) Close() {
	s.closed = true
}

// Closed reports whether Close was called
func (s *Store) Closed() bool {
	return s.closed
}

// AcceptedChanged reports whether the accepted list differs between snapshots.
// Accepted only ever grows by appending, so length is enough.
func AcceptedChanged(prev, next State) bool {
	return len(prev.accepted) != len(next.accepted)
}
