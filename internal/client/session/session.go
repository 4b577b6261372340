// Package session holds the process-wide authentication state of the
// client: whether a user is logged in, who it is, and whether the
// persisted-session check has already run.
//
// State is only changed through the Store's mutators. Every mutation
// publishes a snapshot to subscribers, which is how the navigation shell
// and the UI learn about logins and logouts.
package session

import (
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// CheckStatus tracks the startup login-status check.
type CheckStatus int

const (
	Unchecked CheckStatus = iota
	Checking
	Checked
)

func (s CheckStatus) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checking:
		return "checking"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session.
type State struct {
	Status   CheckStatus
	LoggedIn bool
	User     models.UserProfile
}

// IsChecked reports whether the startup check has completed.
func (s State) IsChecked() bool {
	return s.Status == Checked
}

// Store is safe for concurrent use. Subscribers are called synchronously
// after the lock is released, in subscription order.
type Store struct {
	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(State)
	order  []int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(State))}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for future changes and returns a function that
// removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) subscribersLocked() []func(State) {
	subs := make([]func(State), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	return subs
}

func notify(subs []func(State), snap State) {
	for _, sub := range subs {
		sub(snap)
	}
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap, subs := s.state, s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

func (s *Store) SetLoggedIn(flag bool) {
	s.update(func(st *State) { st.LoggedIn = flag })
}

// SetUserData replaces the profile wholesale.
func (s *Store) SetUserData(user models.UserProfile) {
	s.update(func(st *State) { st.User = user })
}

// SetChecked closes (true) or reopens (false) the startup-check latch.
func (s *Store) SetChecked(flag bool) {
	s.update(func(st *State) {
		if flag {
			st.Status = Checked
		} else {
			st.Status = Unchecked
		}
	})
}

// BeginCheck moves Unchecked to Checking and reports whether it did.
// Any other state means a check is running or has run, and the caller
// must not start another.
func (s *Store) BeginCheck() bool {
	s.mu.Lock()
	if s.state.Status != Unchecked {
		s.mu.Unlock()
		return false
	}
	s.state.Status = Checking
	snap, subs := s.state, s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return true
}

// Reset returns to the start-of-process state in one step.
func (s *Store) Reset() {
	s.update(func(st *State) { *st = State{} })
}
