// Package navigation implements the screen router of the client: named
// routes, a back stack, and the rule that the SignUp and Login screens
// do not exist while a user is logged in.
package navigation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
)

// ErrRouteUnavailable is returned when navigating to a route that is not
// registered in the current auth state.
var ErrRouteUnavailable = errors.New("route unavailable")

// Name identifies a screen.
type Name string

const (
	Home     Name = "Home"
	SignUp   Name = "SignUp"
	Login    Name = "Login"
	Category Name = "Category"
)

// Route is a screen plus its parameters. Only Category has any.
type Route struct {
	Name     Name
	Category models.Category
}

func (r Route) String() string {
	if r.Name == Category {
		return fmt.Sprintf("%s(%s)", r.Name, r.Category.Key())
	}
	return string(r.Name)
}

// To builds a parameterless route.
func To(name Name) Route { return Route{Name: name} }

// ToCategory builds a Category route.
func ToCategory(c models.Category) Route { return Route{Name: Category, Category: c} }

// Shell tracks the current route and the back stack. It follows the
// session: when a user logs in while on SignUp or Login, it moves to Home
// and drops those screens from history.
type Shell struct {
	mu       sync.Mutex
	current  Route
	stack    []Route
	loggedIn bool

	unsubscribe func()
	onChange    func(Route)
}

// New creates a shell on Home bound to sess. Call Close to detach it.
func New(sess *session.Store) *Shell {
	s := &Shell{current: To(Home)}
	s.loggedIn = sess.Snapshot().LoggedIn
	s.unsubscribe = sess.Subscribe(s.onSession)
	return s
}

// OnChange registers fn to be called after every route change, outside
// the shell's lock. Only one callback is kept.
func (s *Shell) OnChange(fn func(Route)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Shell) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// Current returns the active route.
func (s *Shell) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Depth returns the number of routes Back can return to.
func (s *Shell) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack)
}

// Registered reports whether name is reachable in the current auth state.
func (s *Shell) Registered(name Name) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return registered(name, s.loggedIn)
}

// Routes lists the reachable top-level screens in menu order.
func (s *Shell) Routes() []Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Name{Home}
	if !s.loggedIn {
		out = append(out, SignUp, Login)
	}
	return out
}

func registered(name Name, loggedIn bool) bool {
	switch name {
	case Home, Category:
		return true
	case SignUp, Login:
		return !loggedIn
	default:
		return false
	}
}

// Navigate pushes the current route and makes r current. Navigating to
// the route already shown is a no-op.
func (s *Shell) Navigate(r Route) error {
	s.mu.Lock()
	if !registered(r.Name, s.loggedIn) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRouteUnavailable, r.Name)
	}
	if r == s.current {
		s.mu.Unlock()
		return nil
	}
	s.stack = append(s.stack, s.current)
	s.current = r
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(r)
	}
	return nil
}

// Back pops the stack. It reports false when there is nothing to go back to.
func (s *Shell) Back() bool {
	s.mu.Lock()
	if len(s.stack) == 0 {
		s.mu.Unlock()
		return false
	}
	s.current = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	r, fn := s.current, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(r)
	}
	return true
}

func (s *Shell) onSession(st session.State) {
	s.mu.Lock()
	if st.LoggedIn == s.loggedIn {
		s.mu.Unlock()
		return
	}
	s.loggedIn = st.LoggedIn

	kept := s.stack[:0]
	for _, r := range s.stack {
		if registered(r.Name, s.loggedIn) {
			kept = append(kept, r)
		}
	}
	s.stack = kept

	var fn func(Route)
	if !registered(s.current.Name, s.loggedIn) {
		s.current = To(Home)
		fn = s.onChange
	}
	for len(s.stack) > 0 && s.stack[len(s.stack)-1] == s.current {
		s.stack = s.stack[:len(s.stack)-1]
	}
	r := s.current
	s.mu.Unlock()

	if fn != nil {
		fn(r)
	}
}
