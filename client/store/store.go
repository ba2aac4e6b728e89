// Package store is the client-side state container: four independent
// slices updated only through typed events applied by pure reducers.
package store

import "sync"

// Store serializes event application under a mutex and notifies
// subscribers after each transition. Reads return value copies, so
// holders of a State never observe later mutations.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []func(State)
	tokens      TokenStorage
}

// New returns a Store in the initial loading state. The token storage
// is consulted for auth persistence; pass nil for a session-only
// store.
func New(tokens TokenStorage) *Store {
	if tokens == nil {
		tokens = NewMemoryTokenStorage()
	}
	return &Store{
		state:  initialState(),
		tokens: tokens,
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener invoked after every transition with
// the new state. Listeners run synchronously under the dispatch lock,
// so they must not dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Tokens exposes the token storage for session bootstrap.
func (s *Store) Tokens() TokenStorage {
	return s.tokens
}

// Dispatch applies one event through every slice reducer and persists
// or clears the token for auth transitions.
func (s *Store) Dispatch(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Alerts:  alertReducer(s.state.Alerts, ev),
		Auth:    authReducer(s.state.Auth, ev),
		Profile: profileReducer(s.state.Profile, ev),
		Post:    postReducer(s.state.Post, ev),
	}

	switch e := ev.(type) {
	case RegisterSuccessEvent:
		_ = s.tokens.Save(e.Token)
	case LoginSuccessEvent:
		_ = s.tokens.Save(e.Token)
	case RegisterFailEvent, LoginFailEvent, AuthErrorEvent, LogoutEvent, AccountDeletedEvent:
		_ = s.tokens.Clear()
	}

	for _, fn := range s.subscribers {
		fn(s.state)
	}
}
