// Package session owns the authenticated session lifecycle: restoring it from
// the persistent store, logging in against the auth endpoint, and exposing the
// predicates the route guard reads.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"example.com/fitdash/internal/identity"
	"example.com/fitdash/internal/observability"
	"example.com/fitdash/internal/store"
)

// Persistent store keys. Both are written and removed together; one without
// the other is corrupt state.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Credentials is the login payload sent to the auth endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token string        `json:"token"`
	User  identity.User `json:"user"`
}

// AuthClient calls the external auth endpoint.
type AuthClient interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
}

// Manager owns the in-memory session state. A nil store models an execution
// context that cannot see durable storage; such a manager initializes empty
// and hands its state over through Snapshot.
type Manager struct {
	mu          sync.Mutex
	user        *identity.User
	token       string
	initialized bool
	generation  uint64 // bumped by Logout; a stale in-flight login is discarded

	store    store.Store
	client   AuthClient
	navigate func(path string)
	log      zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log.With().Str("component", "session").Logger() }
}

// WithNavigator sets the callback invoked when an operation triggers a
// navigation side effect (logout navigates to the landing route).
func WithNavigator(fn func(path string)) Option {
	return func(m *Manager) { m.navigate = fn }
}

// NewManager constructs a Manager. Both store and client may be nil: a nil
// store models a storage-less context, a nil client disables Login.
func NewManager(st store.Store, client AuthClient, opts ...Option) *Manager {
	m := &Manager{
		store:  st,
		client: client,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize restores the session from the persistent store. Only the first
// call does work; the initialized flag flips exactly once no matter what the
// store held. Without a store the session simply becomes initialized and
// empty, to be reconciled later through the snapshot bridge.
func (m *Manager) Initialize() {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	if m.store == nil {
		m.initialized = true
		m.mu.Unlock()
		return
	}

	token, user, err := m.readPersisted()
	if err != nil {
		m.initialized = true
		m.mu.Unlock()
		m.log.Warn().Err(err).Msg("persisted session state corrupt, forcing logout")
		observability.RecordForcedLogout()
		m.Logout()
		return
	}
	if token != "" {
		m.token = token
		m.user = user
		observability.RecordSessionRestored()
		m.log.Info().Str("email", user.Email).Msg("session restored from store")
	}
	m.initialized = true
	m.mu.Unlock()
}

// readPersisted loads the stored token/user pair. Exactly one entry present,
// an empty token, an unparseable user payload and a user that fails validation
// are all corrupt states. Called with the lock held.
func (m *Manager) readPersisted() (string, *identity.User, error) {
	tokenRaw, tokenOK, err := m.store.Get(KeyToken)
	if err != nil {
		return "", nil, err
	}
	userRaw, userOK, err := m.store.Get(KeyUser)
	if err != nil {
		return "", nil, err
	}

	if !tokenOK && !userOK {
		return "", nil, nil // logged out
	}
	if tokenOK != userOK {
		return "", nil, fmt.Errorf("%w: one entry present without the other", ErrCorruptState)
	}
	token := string(tokenRaw)
	if token == "" {
		return "", nil, fmt.Errorf("%w: empty token", ErrCorruptState)
	}

	var user identity.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if err := user.Validate(); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return token, &user, nil
}

// Login authenticates against the auth endpoint. Failures surface as
// *AuthError with the endpoint's message; the session is only mutated after a
// successful response is fully parsed. A Logout that lands while the call is
// in flight wins, and the stale response is discarded.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	m.mu.Lock()
	client := m.client
	gen := m.generation
	m.mu.Unlock()

	if client == nil {
		return nil, &AuthError{Reason: "no auth endpoint configured"}
	}

	result, err := client.Login(ctx, Credentials{Email: email, Password: password})
	if err != nil {
		observability.RecordLogin(observability.LoginFailure)
		m.log.Warn().Err(err).Str("email", email).Msg("login failed")
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return nil, err
		}
		return nil, &AuthError{Reason: err.Error()}
	}

	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		observability.RecordLogin(observability.LoginSuperseded)
		return nil, ErrLoginSuperseded
	}
	err = m.setAuthLocked(result.Token, result.User)
	m.mu.Unlock()
	if err != nil {
		observability.RecordLogin(observability.LoginFailure)
		return nil, &AuthError{Reason: err.Error()}
	}

	observability.RecordLogin(observability.LoginSuccess)
	m.log.Info().Str("email", email).Msg("login succeeded")
	return result, nil
}

// SetAuth adopts a token/user pair. The pair is enforced together: an empty
// token or an invalid user leaves the session untouched. Safe to call
// repeatedly; the last write wins.
func (m *Manager) SetAuth(token string, user identity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setAuthLocked(token, user)
}

func (m *Manager) setAuthLocked(token string, user identity.User) error {
	if token == "" {
		return ErrInvalidAuthPair
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAuthPair, err)
	}

	u := user
	m.token = token
	m.user = &u
	m.initialized = true

	if m.store != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		if err := m.store.Put(KeyToken, []byte(token)); err != nil {
			return err
		}
		if err := m.store.Put(KeyUser, raw); err != nil {
			return err
		}
	}
	return nil
}

// UpdateUser replaces the user record, leaving the token alone, and persists
// the new record when a store is attached.
func (m *Manager) UpdateUser(user identity.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAuthPair, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u := user
	m.user = &u

	if m.store != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return m.store.Put(KeyUser, raw)
	}
	return nil
}

// Logout clears the session, removes both persisted entries and navigates to
// the landing route. It also invalidates any login still in flight.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.generation++
	st := m.store
	m.mu.Unlock()

	if st != nil {
		if err := st.Delete(KeyToken); err != nil {
			m.log.Error().Err(err).Msg("failed to remove persisted token")
		}
		if err := st.Delete(KeyUser); err != nil {
			m.log.Error().Err(err).Msg("failed to remove persisted user")
		}
	}
	if m.navigate != nil {
		m.navigate("/")
	}
	m.log.Info().Msg("logged out")
}

// IsAuthenticated reports whether an initialized session holds a token. It is
// always false before initialization, regardless of the token.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && m.token != ""
}

// IsCoach reports whether the session user holds the coach role.
func (m *Manager) IsCoach() bool { return m.hasRole(identity.RoleCoach) }

// IsAthlete reports whether the session user holds the athlete role.
func (m *Manager) IsAthlete() bool { return m.hasRole(identity.RoleAthlete) }

func (m *Manager) hasRole(role identity.Role) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.Role == role
}

// Initialized reports whether initialization has completed.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// User returns a copy of the session user, or nil when anonymous.
func (m *Manager) User() *identity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the session token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}
