package state

import (
	"maps"
	"sync"
)

// Action is a dispatched state transition. Type selects the reducer branch;
// Payload carries the action's data and is owned by the reducers after
// dispatch.
type Action struct {
	Type    string
	Payload any
}

// Reducer is a pure slice reducer: given the current slice value and an
// action it returns the next slice value. A nil slice value means the slice
// has not been initialized yet; reducers substitute their initial state.
// Unknown action types must return the input unchanged.
type Reducer func(slice any, action Action) any

// init is dispatched once at construction so every reducer normalizes its
// slice to the initial state.
const actionInit = "@@init"

// Store is the single shared state container: a flat tree of independently
// reduced slices. It is constructed once at process start and passed by
// reference to every consumer. All mutation goes through Dispatch, which
// runs reducers serially under one lock, so no two reducers ever run
// concurrently.
type Store struct {
	mu        sync.Mutex
	reducers  map[string]Reducer
	state     map[string]any
	listeners map[int]func()
	nextID    int
}

// New composes the given slice reducers into one store. Slices named in
// preloaded start from the supplied value instead of the reducer's initial
// state; preloaded keys without a reducer are ignored.
func New(reducers map[string]Reducer, preloaded map[string]any) *Store {
	s := &Store{
		reducers:  maps.Clone(reducers),
		state:     make(map[string]any, len(reducers)),
		listeners: make(map[int]func()),
	}
	for name, reduce := range s.reducers {
		s.state[name] = reduce(preloaded[name], Action{Type: actionInit})
	}
	return s
}

// GetState returns a snapshot of the state tree. Slice values are immutable
// records; callers must not mutate payloads reachable from them.
func (s *Store) GetState() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.state)
}

// Slice returns the current value of a single slice.
func (s *Store) Slice(name string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state[name]
}

// Dispatch runs the action through every slice reducer, then notifies
// subscribers. Reduction is serialized; listeners run after the lock is
// released, on the dispatching goroutine.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	for name, reduce := range s.reducers {
		s.state[name] = reduce(s.state[name], action)
	}
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners must not block: they run inline on every dispatch.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
