package session

import (
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/robfig/cron/v3"

	"lms/api"
	"lms/models"
	"lms/services/authService"
)

// State is the authentication state of the process.
type State int

const (
	// StateLoading is the initial state, before hydration has finished.
	StateLoading State = iota
	// StateAnonymous means no validated user is present.
	StateAnonymous
	// StateAuthenticated means a user was fetched with a valid token.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Manager owns the process-wide session: the persisted token, the in-memory
// user, and the transitions between them. It is the sole writer of both.
//
// Overlapping mutations (a double-submitted login, hydration racing a logout)
// are guarded by a generation counter: each mutation takes a generation at
// start and only commits if no later mutation has begun since.
type Manager struct {
	client *api.Client
	auth   *authService.AuthService
	store  *Store

	mu      sync.Mutex
	state   State
	user    *models.User
	loading bool
	offline bool
	gen     uint64

	keepalive *cron.Cron
}

// NewManager wires the session manager. The returned manager is in
// StateLoading until Hydrate is called.
func NewManager(client *api.Client, auth *authService.AuthService, store *Store) *Manager {
	return &Manager{
		client:  client,
		auth:    auth,
		store:   store,
		state:   StateLoading,
		loading: true,
	}
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the authenticated user, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// IsAuthenticated is derived from user presence, never stored.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// IsLoading is true exactly while hydration or a login/signup is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Offline is true when the last hydration failed for a reason other than an
// invalid token. The stored token is retained in that case and a Hydrate
// retry may still succeed.
func (m *Manager) Offline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offline
}

// CachedUser returns the last persisted profile snapshot, for display while
// offline. It does not imply an authenticated session.
func (m *Manager) CachedUser() *models.User {
	user, err := m.store.Profile()
	if err != nil {
		log.Printf("session: reading cached profile: %v", err)
		return nil
	}
	return user
}

// begin starts a session mutation: marks the manager loading and returns the
// new generation.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.loading = true
	return m.gen
}

// current reports whether gen is still the latest mutation.
func (m *Manager) current(gen uint64) bool {
	return gen == m.gen
}

// commit finishes a mutation and reports whether it took effect. Superseded
// generations are dropped so only the most recently issued call overwrites
// state.
func (m *Manager) commit(gen uint64, state State, user *models.User, offline bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current(gen) {
		return false
	}
	m.state = state
	m.user = user
	m.offline = offline
	m.loading = false
	return true
}

// persistToken saves and attaches token, unless a newer mutation has taken
// over the session in the meantime. The store write happens under the lock so
// a concurrent Logout cannot interleave between the check and the write.
func (m *Manager) persistToken(gen uint64, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current(gen) {
		return false
	}
	if err := m.store.SaveToken(token); err != nil {
		log.Printf("session: persisting token: %v", err)
	}
	m.client.SetToken(token)
	return true
}

// armToken attaches an already-stored token to the client, unless a newer
// mutation has taken over.
func (m *Manager) armToken(gen uint64, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current(gen) {
		return false
	}
	m.client.SetToken(token)
	return true
}

// discardTokenIfCurrent clears the token only when gen still owns the
// session, so a stale mutation cannot delete a newer login's token.
func (m *Manager) discardTokenIfCurrent(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current(gen) {
		return
	}
	m.client.ClearToken()
	if err := m.store.DeleteToken(); err != nil {
		log.Printf("session: deleting stored token: %v", err)
	}
}

// Hydrate restores the session from the persisted token. No token, or a token
// the server rejects as unauthorized, ends in StateAnonymous with the token
// absent from storage. Any other fetch failure retains the token and sets the
// offline flag so the caller can retry.
func (m *Manager) Hydrate() error {
	gen := m.begin()

	token, err := m.store.Token()
	if err != nil {
		log.Printf("session: reading stored token: %v", err)
		m.commit(gen, StateAnonymous, nil, false)
		return err
	}
	if token == "" {
		m.commit(gen, StateAnonymous, nil, false)
		return nil
	}

	if tokenExpired(token) {
		m.discardTokenIfCurrent(gen)
		m.commit(gen, StateAnonymous, nil, false)
		return nil
	}

	if !m.armToken(gen, token) {
		return nil
	}

	user, err := m.auth.CurrentUser()
	if err != nil {
		if api.IsUnauthorized(err) {
			m.discardTokenIfCurrent(gen)
			m.commit(gen, StateAnonymous, nil, false)
			return nil
		}
		// Transient failure: keep the token so a retry can still restore
		// the session.
		log.Printf("session: hydration failed, keeping token: %v", err)
		m.commit(gen, StateAnonymous, nil, true)
		return err
	}

	if m.commit(gen, StateAuthenticated, user, false) {
		m.saveProfile(user)
	}
	return nil
}

// Login authenticates, persists the issued token, and fetches the user.
// On any failure the manager ends in StateAnonymous and the error propagates
// for the caller to display.
func (m *Manager) Login(email, password string) error {
	gen := m.begin()

	resp, err := m.auth.Login(email, password)
	if err != nil {
		m.commit(gen, StateAnonymous, nil, false)
		return err
	}

	return m.establish(gen, resp)
}

// Signup registers a new account; otherwise identical in shape to Login.
func (m *Manager) Signup(req authService.RegisterRequest) error {
	gen := m.begin()

	resp, err := m.auth.Register(req)
	if err != nil {
		m.commit(gen, StateAnonymous, nil, false)
		return err
	}

	return m.establish(gen, resp)
}

// establish persists the token from resp and resolves the current user. The
// user is always re-fetched from /me rather than trusted from the login
// response, so the committed state reflects what the token actually grants.
// Every side effect is generation-guarded: a login that finishes after a
// Logout (or after a newer login) must leave no trace, not just skip its
// state commit.
func (m *Manager) establish(gen uint64, resp *authService.AuthResponse) error {
	if !m.persistToken(gen, resp.Token) {
		// A newer mutation owns the session; drop this one.
		return nil
	}

	user, err := m.auth.CurrentUser()
	if err != nil {
		m.discardTokenIfCurrent(gen)
		m.commit(gen, StateAnonymous, nil, false)
		return err
	}

	if m.commit(gen, StateAuthenticated, user, false) {
		m.saveProfile(user)
	}
	return nil
}

// Logout clears the in-memory user and the stored token. Local-only and
// synchronous; the server-side logout call is fired best-effort afterwards
// and never blocks the local clearing.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.gen++ // invalidate any in-flight mutation
	m.state = StateAnonymous
	m.user = nil
	m.offline = false
	m.loading = false
	token := m.client.Token()
	m.mu.Unlock()

	m.discardToken()
	if err := m.store.DeleteProfile(); err != nil {
		log.Printf("session: deleting profile snapshot: %v", err)
	}

	if token != "" {
		go func() {
			if err := m.auth.RevokeToken(token); err != nil {
				log.Printf("session: server logout failed (ignored): %v", err)
			}
		}()
	}
}

// StartKeepalive re-fetches the current user on the given cron schedule
// (e.g. "@every 10m") while authenticated, so an expired session is noticed
// without user action.
func (m *Manager) StartKeepalive(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, m.refresh); err != nil {
		return err
	}
	// Replacing a running schedule must stop the old one first.
	m.StopKeepalive()
	c.Start()
	m.keepalive = c
	return nil
}

// StopKeepalive stops the refresh schedule, if running.
func (m *Manager) StopKeepalive() {
	if m.keepalive != nil {
		m.keepalive.Stop()
		m.keepalive = nil
	}
}

func (m *Manager) refresh() {
	if !m.IsAuthenticated() {
		return
	}

	user, err := m.auth.CurrentUser()
	if err != nil {
		if api.IsUnauthorized(err) {
			log.Println("session: token no longer valid, logging out")
			m.Logout()
			return
		}
		log.Printf("session: keepalive refresh failed: %v", err)
		return
	}

	m.mu.Lock()
	active := m.user != nil
	if active {
		m.user = user
	}
	m.mu.Unlock()

	// A logout may have landed while the fetch was in flight; don't write
	// the snapshot back in that case.
	if active {
		m.saveProfile(user)
	}
}

func (m *Manager) discardToken() {
	m.client.ClearToken()
	if err := m.store.DeleteToken(); err != nil {
		log.Printf("session: deleting stored token: %v", err)
	}
}

func (m *Manager) saveProfile(user *models.User) {
	if err := m.store.SaveProfile(user); err != nil {
		log.Printf("session: persisting profile snapshot: %v", err)
	}
}

// tokenExpired peeks at the token without verifying it. The token is opaque
// to the client; only when it happens to be a JWT carrying an exp claim in
// the past do we skip the doomed current-user fetch.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	// VerifyExpiresAt with required=false treats a missing exp as valid.
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}
