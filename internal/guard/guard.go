// Package guard gates a role-scoped view behind the presence of a session
// token. A missing token is the ordinary logged-out condition: the guard
// shows a countdown and then sends the visitor to the role's login route.
package guard

import (
	"sync"
	"time"
)

// State of a mounted guard.
type State int

const (
	Checking State = iota
	Granted
	CountingDown
	Redirected
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Granted:
		return "granted"
	case CountingDown:
		return "counting-down"
	case Redirected:
		return "redirected"
	default:
		return "unknown"
	}
}

// DefaultCountdown is the grace period, in ticks, shown on the denied screen.
const DefaultCountdown = 5

// Role carries everything that differs between the protected areas. The
// admin and manager guards are the same machine with different parameters.
type Role struct {
	Name       string
	TokenKey   string
	LoginRoute string
}

var (
	Admin   = Role{Name: "admin", TokenKey: "adminToken", LoginRoute: "/admin/login"}
	Manager = Role{Name: "manager", TokenKey: "managerToken", LoginRoute: "/manager/login"}
)

// TokenSource yields the cached session token for a key.
type TokenSource interface {
	Get(key string) (string, bool)
}

// Navigator replaces the current location. Replace, not push: the back
// button must not return to the denied view.
type Navigator interface {
	Replace(route string)
}

// Guard is the per-mount state machine. Mount once; Unmount cancels the
// countdown so no stale tick fires into a torn down view.
type Guard struct {
	role     Role
	tokens   TokenSource
	nav      Navigator
	interval time.Duration
	start    int

	mu        sync.Mutex
	state     State
	remaining int
	stop      chan struct{}
	stopped   bool
}

type Option func(*Guard)

// WithInterval overrides the one second tick, mainly for tests.
func WithInterval(d time.Duration) Option {
	return func(g *Guard) { g.interval = d }
}

// WithCountdown overrides the number of ticks before the redirect.
func WithCountdown(n int) Option {
	return func(g *Guard) { g.start = n }
}

func New(role Role, tokens TokenSource, nav Navigator, opts ...Option) *Guard {
	g := &Guard{
		role:     role,
		tokens:   tokens,
		nav:      nav,
		interval: time.Second,
		start:    DefaultCountdown,
		state:    Checking,
		stop:     make(chan struct{}),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Mount reads the token synchronously and either grants access or starts the
// countdown. Granted is terminal for the session. Calling Mount again
// returns the current state without restarting anything.
func (g *Guard) Mount() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Checking {
		return g.state
	}
	if tok, ok := g.tokens.Get(g.role.TokenKey); ok && tok != "" {
		g.state = Granted
		return g.state
	}
	g.state = CountingDown
	g.remaining = g.start
	go g.run()
	return g.state
}

func (g *Guard) run() {
	t := time.NewTicker(g.interval)
	defer t.Stop()
	for {
		select {
		case <-g.stop:
			return
		case <-t.C:
			if g.tick() {
				return
			}
		}
	}
}

// tick reports whether the countdown is over.
func (g *Guard) tick() bool {
	g.mu.Lock()
	if g.state != CountingDown {
		g.mu.Unlock()
		return true
	}
	g.remaining--
	if g.remaining > 0 {
		g.mu.Unlock()
		return false
	}
	g.mu.Unlock()
	g.redirect()
	return true
}

// GoToLogin skips the rest of the countdown. Both paths converge here; the
// navigator is invoked at most once either way.
func (g *Guard) GoToLogin() {
	g.redirect()
}

func (g *Guard) redirect() {
	g.mu.Lock()
	if g.state != CountingDown {
		g.mu.Unlock()
		return
	}
	g.state = Redirected
	g.remaining = 0
	g.cancelLocked()
	g.mu.Unlock()

	g.nav.Replace(g.role.LoginRoute)
}

// Unmount cancels the countdown. Idempotent, safe from any state.
func (g *Guard) Unmount() {
	g.mu.Lock()
	g.cancelLocked()
	g.mu.Unlock()
}

func (g *Guard) cancelLocked() {
	if !g.stopped {
		g.stopped = true
		close(g.stop)
	}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Remaining is the number of ticks left before the redirect fires.
func (g *Guard) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining
}
