package state

import "sync"

// Subscriber is notified after every committed transition with the previous and the new state.
// Subscribers run outside the store lock, one transition at a time in commit order.
type Subscriber func(previous, current State)

type transition struct {
	previous State
	current  State
}

// Store is the single container of dashboard state
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers map[int]Subscriber
	nextID      int
	pending     []transition
	notifying   bool
}

func NewStore(initial State) *Store {
	if initial.Sequences == nil {
		initial.Sequences = Sequences{}
	}
	return &Store{state: initial, subscribers: make(map[int]Subscriber)}
}

// State returns the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin issues the next sequence number for slot. Only the result tagged with the latest number is committed.
func (s *Store) Begin(slot Slot) uint64 {
	next, _ := s.Dispatch(RequestStarted{Slot: slot})
	return next.Latest(slot)
}

// Dispatch reduces action into the state. It returns the resulting state and whether the action was committed.
// When another dispatch is already notifying, that dispatch delivers this transition too.
func (s *Store) Dispatch(action Action) (State, bool) {
	s.mu.Lock()
	previous := s.state
	next, changed := Reduce(previous, action)
	if !changed {
		s.mu.Unlock()
		return previous, false
	}

	s.state = next
	s.pending = append(s.pending, transition{previous: previous, current: next})
	if s.notifying {
		s.mu.Unlock()
		return next, true
	}
	s.notifying = true
	s.mu.Unlock()

	s.notify()
	return next, true
}

func (s *Store) notify() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.notifying = false
			s.mu.Unlock()
			return
		}
		batch := s.pending
		s.pending = nil
		subscribers := make([]Subscriber, 0, len(s.subscribers))
		for _, subscriber := range s.subscribers {
			subscribers = append(subscribers, subscriber)
		}
		s.mu.Unlock()

		for _, t := range batch {
			for _, subscriber := range subscribers {
				subscriber(t.previous, t.current)
			}
		}
	}
}

// Subscribe registers fn and returns a function that removes it
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
