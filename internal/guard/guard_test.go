package guard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens map[string]string

func (s staticTokens) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

type recordingNav struct {
	mu     sync.Mutex
	routes []string
	fired  chan struct{}
}

func newRecordingNav() *recordingNav {
	return &recordingNav{fired: make(chan struct{}, 16)}
}

func (n *recordingNav) Replace(route string) {
	n.mu.Lock()
	n.routes = append(n.routes, route)
	n.mu.Unlock()
	n.fired <- struct{}{}
}

func (n *recordingNav) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}

func waitForRedirect(t *testing.T, nav *recordingNav) {
	t.Helper()
	select {
	case <-nav.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("redirect never fired")
	}
}

func TestMountGrantsWithToken(t *testing.T) {
	nav := newRecordingNav()
	g := New(Manager, staticTokens{"managerToken": "tok-123"}, nav)
	defer g.Unmount()

	require.Equal(t, Granted, g.Mount())
	assert.Empty(t, nav.calls())
}

func TestMountTreatsEmptyTokenAsAbsent(t *testing.T) {
	nav := newRecordingNav()
	g := New(Manager, staticTokens{"managerToken": ""}, nav, WithInterval(time.Millisecond))
	defer g.Unmount()

	require.Equal(t, CountingDown, g.Mount())
}

func TestCountdownRedirectsExactlyOnce(t *testing.T) {
	nav := newRecordingNav()
	g := New(Admin, staticTokens{}, nav, WithInterval(time.Millisecond), WithCountdown(3))
	defer g.Unmount()

	require.Equal(t, CountingDown, g.Mount())
	waitForRedirect(t, nav)

	require.Equal(t, Redirected, g.State())
	assert.Equal(t, 0, g.Remaining())

	// Give any stale tick the chance to misfire.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"/admin/login"}, nav.calls())
}

func TestGoToLoginSkipsCountdown(t *testing.T) {
	nav := newRecordingNav()
	g := New(Manager, staticTokens{}, nav, WithInterval(time.Hour))
	defer g.Unmount()

	require.Equal(t, CountingDown, g.Mount())
	g.GoToLogin()

	require.Equal(t, Redirected, g.State())
	assert.Equal(t, []string{"/manager/login"}, nav.calls())

	// A second invocation and any later tick are no-ops.
	g.GoToLogin()
	time.Sleep(10 * time.Millisecond)
	assert.Len(t, nav.calls(), 1)
}

func TestUnmountCancelsCountdown(t *testing.T) {
	nav := newRecordingNav()
	g := New(Manager, staticTokens{}, nav, WithInterval(time.Millisecond), WithCountdown(2))

	require.Equal(t, CountingDown, g.Mount())
	g.Unmount()

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, nav.calls(), "a cancelled guard must never redirect")
}

func TestGoToLoginBeforeMountDoesNothing(t *testing.T) {
	nav := newRecordingNav()
	g := New(Admin, staticTokens{}, nav)
	defer g.Unmount()

	g.GoToLogin()
	assert.Equal(t, Checking, g.State())
	assert.Empty(t, nav.calls())
}

func TestMountIsIdempotent(t *testing.T) {
	nav := newRecordingNav()
	g := New(Admin, staticTokens{"adminToken": "tok"}, nav)
	defer g.Unmount()

	require.Equal(t, Granted, g.Mount())
	require.Equal(t, Granted, g.Mount())
}
