package session

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// expiryMargin is how long before the decoded token expiry the guard ends
// the session, so a request never races a 401 from the backend.
const expiryMargin = 5 * time.Second

// ErrEnded is returned by operations aborted because the session was force
// ended. Callers must treat it as an abort signal, never as an ordinary
// request failure: the guard has already cleared state and notified the UI.
var ErrEnded = errors.New("session ended")

// EndReason tags why a session was force ended.
type EndReason string

const (
	// ReasonExpired: the token reached (or nearly reached) its exp claim,
	// or the backend answered 401/419/440.
	ReasonExpired EndReason = "expired"
	// ReasonForbidden: the backend answered 403.
	ReasonForbidden EndReason = "forbidden"
	// ReasonMissing: a request failed with no response while no token was
	// held.
	ReasonMissing EndReason = "missing"
)

// State is the lifecycle state of the process-wide session.
type State int

const (
	Anonymous State = iota
	Authenticated
	ExpiringSoon
	Expired
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case ExpiringSoon:
		return "expiring_soon"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// EndNotice is broadcast to subscribers when the session ends.
type EndNotice struct {
	Reason     EndReason
	ReturnPath string
}

// EndedError wraps ErrEnded with the reason the session ended.
type EndedError struct {
	Reason EndReason
}

func (e *EndedError) Error() string {
	return fmt.Sprintf("session ended: %s", e.Reason)
}

func (e *EndedError) Unwrap() error { return ErrEnded }

// Guard watches a single process-wide session. It arms a proactive logout
// timer from the token's exp claim and exposes a notification channel so
// the UI layer can react to a forced logout without polling.
type Guard struct {
	store *Store
	now   func() time.Time

	// onEnd runs after state is cleared and subscribers notified; the CLI
	// uses it to point the user at the sign-in entry point.
	onEnd func(EndNotice)

	mu          sync.Mutex
	state       State
	timer       *time.Timer
	subscribers []chan EndNotice
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithNow overrides the guard's clock. Used by tests.
func WithNow(now func() time.Time) GuardOption {
	return func(g *Guard) { g.now = now }
}

// WithEndHook sets the callback invoked after a forced logout completes.
func WithEndHook(fn func(EndNotice)) GuardOption {
	return func(g *Guard) { g.onEnd = fn }
}

// NewGuard creates a guard over the given store. The guard starts in the
// state implied by the store: Authenticated when a token is already
// persisted, Anonymous otherwise.
func NewGuard(store *Store, opts ...GuardOption) *Guard {
	g := &Guard{
		store: store,
		now:   time.Now,
		state: Anonymous,
	}
	for _, opt := range opts {
		opt(g)
	}
	if store.Token() != "" {
		g.state = Authenticated
	}
	return g
}

// State returns the current session state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Token returns the current bearer token, or "" when anonymous.
func (g *Guard) Token() string {
	return g.store.Token()
}

// Subscribe returns a channel that receives a notice when the session is
// force ended. The channel is buffered and never blocks the guard.
func (g *Guard) Subscribe() <-chan EndNotice {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch := make(chan EndNotice, 1)
	g.subscribers = append(g.subscribers, ch)
	return ch
}

// Activate stores a freshly issued token and arms the proactive logout
// timer. The timer fires expiryMargin before the decoded expiry, clamped to
// fire immediately when the token is already inside that window. Tokens
// without a decodable exp claim are stored but not watched.
func (g *Guard) Activate(token string) error {
	if err := g.store.SetToken(token); err != nil {
		return err
	}

	g.mu.Lock()
	g.state = Authenticated
	g.stopTimerLocked()
	g.mu.Unlock()

	exp, ok := TokenExpiry(token)
	if !ok {
		return nil
	}

	wait := exp.Sub(g.now()) - expiryMargin
	if wait <= 0 {
		// Already inside the margin: end the session now rather than
		// arming a zero timer, so callers observe the transition
		// synchronously.
		g.End(ReasonExpired, "")
		return nil
	}

	g.mu.Lock()
	g.state = Authenticated
	g.timer = time.AfterFunc(wait, func() {
		g.markExpiringSoon()
		g.End(ReasonExpired, "")
	})
	g.mu.Unlock()
	return nil
}

// Resume re-arms the watcher for a token persisted by a previous run.
// No-op when anonymous.
func (g *Guard) Resume() {
	token := g.store.Token()
	if token == "" {
		return
	}
	_ = g.Activate(token)
}

// End force-ends the session: persisted session data is cleared, the
// current location is recorded for the post-login return, subscribers are
// notified with the reason, and the end hook runs. Calling End on an
// already-ended or anonymous session only updates the state.
func (g *Guard) End(reason EndReason, returnPath string) {
	g.mu.Lock()
	alreadyEnded := g.state == Expired
	g.state = Expired
	g.stopTimerLocked()
	subs := make([]chan EndNotice, len(g.subscribers))
	copy(subs, g.subscribers)
	g.mu.Unlock()

	if alreadyEnded {
		return
	}

	_ = g.store.Clear()
	if returnPath != "" {
		_ = g.store.SetReturnPath(returnPath)
	}

	notice := EndNotice{Reason: reason, ReturnPath: returnPath}
	for _, ch := range subs {
		select {
		case ch <- notice:
		default:
		}
	}

	if g.onEnd != nil {
		g.onEnd(notice)
	}
}

// Logout ends the session deliberately: state is cleared without recording
// a return path or notifying subscribers of a failure.
func (g *Guard) Logout() error {
	g.mu.Lock()
	g.state = Anonymous
	g.stopTimerLocked()
	g.mu.Unlock()
	return g.store.Clear()
}

func (g *Guard) markExpiringSoon() {
	g.mu.Lock()
	if g.state == Authenticated {
		g.state = ExpiringSoon
	}
	g.mu.Unlock()
}

func (g *Guard) stopTimerLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
