package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const (
	keyMember       = "member"
	keyLoginState   = "login_state"
	keyLoginStarted = "login_started"
	keyLoginNext    = "login_next"

	// LoginPendingWindow is how long a started login reports Loading while
	// the provider callback has not arrived.
	LoginPendingWindow = 2 * time.Minute
)

var ErrStateMismatch = errors.New("login state mismatch")

// Sessions keeps identity in a server-side session behind a cookie.
type Sessions struct {
	store *session.Store
	Now   func() time.Time
}

func NewSessions(store *session.Store) *Sessions {
	return &Sessions{store: store, Now: time.Now}
}

func (s *Sessions) State(c *fiber.Ctx) (State, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return Unauthenticated(), fmt.Errorf("load session: %w", err)
	}

	if raw, ok := sess.Get(keyMember).(string); ok && raw != "" {
		var m Member
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return Unauthenticated(), fmt.Errorf("decode session member: %w", err)
		}
		return Authenticated(m), nil
	}

	if started, ok := sess.Get(keyLoginStarted).(int64); ok {
		if s.Now().Sub(time.Unix(started, 0)) < LoginPendingWindow {
			return Loading(), nil
		}
	}
	return Unauthenticated(), nil
}

// BeginLogin records a pending login and returns the state token to send to the provider.
// next is where CompleteLogin sends the member afterwards; only local paths are kept.
func (s *Sessions) BeginLogin(c *fiber.Ctx, next string) (string, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	state := uuid.NewString()
	sess.Set(keyLoginState, state)
	sess.Set(keyLoginStarted, s.Now().Unix())
	sess.Set(keyLoginNext, safeNext(next))
	if err := sess.Save(); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return state, nil
}

// CompleteLogin checks the state token issued by BeginLogin, stores the member and
// returns the path to continue to.
func (s *Sessions) CompleteLogin(c *fiber.Ctx, state string, m Member) (string, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	expected, _ := sess.Get(keyLoginState).(string)
	if expected == "" || expected != state {
		return "", ErrStateMismatch
	}
	next, _ := sess.Get(keyLoginNext).(string)

	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode session member: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return "", fmt.Errorf("regenerate session: %w", err)
	}
	sess.Delete(keyLoginState)
	sess.Delete(keyLoginStarted)
	sess.Delete(keyLoginNext)
	sess.Set(keyMember, string(raw))
	if err := sess.Save(); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return safeNext(next), nil
}

func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/auth/") {
		return "/profile"
	}
	return next
}

func (s *Sessions) Logout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	return sess.Destroy()
}

const localsKey = "identity.state"

// WithState stores the resolved state on the request.
func WithState(c *fiber.Ctx, st State) {
	c.Locals(localsKey, st)
}

// FromCtx returns the state resolved for this request, Unauthenticated if none.
func FromCtx(c *fiber.Ctx) State {
	if st, ok := c.Locals(localsKey).(State); ok {
		return st
	}
	return Unauthenticated()
}
