// Package session owns the client's authentication state: it validates the
// remote session on startup, decides whether the locally cached profile can be
// trusted, and exposes the sign-in, sign-up and sign-out operations to the
// presentation layer.
//
// Operations are synchronous; the embedding application runs them in its own
// goroutines. All externally visible state flows through a single atomic
// publication point, so observers never see a half-updated state, and an
// update arriving after the caller navigated away is simply an unobserved
// render. Overlapping calls to the same operation are not deduplicated here;
// disabling the control while busy is the presentation layer's job.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifefellowship/fellowship-client/logger"
	"github.com/lifefellowship/fellowship-client/metrics"
	"github.com/lifefellowship/fellowship-client/model"
)

// fallbackExpireLayout is the fixed layout some backend versions emit instead
// of RFC 3339.
const fallbackExpireLayout = "2006-01-02T15:04:05.000-0700"

// Manager is the single authoritative source of "who is logged in".
type Manager struct {
	accounts  model.AccountService
	documents model.DocumentStore
	profiles  model.ProfileStore
	collector metrics.Collector
	logger    *logger.Logger

	usersCollection string
	now             func() time.Time

	publisher publisher
}

// Option configures Manager behavior.
type Option func(*Manager)

// WithClock overrides the time source used for session expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithCollector attaches a metrics collector.
func WithCollector(collector metrics.Collector) Option {
	return func(m *Manager) {
		m.collector = collector
	}
}

// NewManager creates a Manager in the Initializing state (loading, no user).
// The caller is expected to run ValidateSession next.
func NewManager(
	accounts model.AccountService,
	documents model.DocumentStore,
	profiles model.ProfileStore,
	usersCollection string,
	logger *logger.Logger,
	opts ...Option,
) *Manager {
	m := &Manager{
		accounts:        accounts,
		documents:       documents,
		profiles:        profiles,
		collector:       metrics.Noop{},
		logger:          logger,
		usersCollection: usersCollection,
		now:             time.Now,
	}
	m.publisher.state = State{Loading: true}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// State returns the current authentication state.
func (m *Manager) State() State {
	return m.publisher.current()
}

// Subscribe registers an observer of state changes. The returned channel
// immediately carries the current state; the cancel function removes the
// subscription.
func (m *Manager) Subscribe() (<-chan State, func()) {
	return m.publisher.subscribe()
}

func (m *Manager) setState(loading bool, user *model.UserAccount) {
	m.publisher.set(State{Loading: loading, User: user})
}

// adopt persists the account as the cached profile and publishes it as the
// signed-in user.
func (m *Manager) adopt(account model.UserAccount) {
	if err := m.profiles.Save(account); err != nil {
		m.logger.Error("Session manager: failed to cache profile",
			"user_id", account.ID,
			"error", err.Error())
	}
	m.setState(false, &account)
}

// ValidateSession resolves the startup state from the remote session and the
// local cache. Failures end in the Unauthenticated state and are logged, never
// surfaced: the user simply lands on the sign-in screen.
func (m *Manager) ValidateSession(ctx context.Context) {
	m.setState(true, nil)

	sess, err := m.accounts.GetCurrentSession(ctx)
	if err != nil {
		m.logger.Debug("Session manager: no active session",
			"error", err.Error())
		m.collector.SessionValidated(metrics.OutcomeNone)
		m.setState(false, nil)
		return
	}

	if !m.sessionValid(sess.Expire) {
		m.logger.Info("Session manager: session expired, clearing local state",
			"session_id", sess.ID)
		m.collector.SessionValidated(metrics.OutcomeExpired)
		m.clearSession(ctx)
		return
	}

	user, err := m.loadOrFetchProfile(ctx, sess.UserID)
	if err != nil {
		m.logger.Error("Session manager: failed to resolve profile for valid session",
			"user_id", sess.UserID,
			"error", err.Error())
		m.collector.SessionValidated(metrics.OutcomeUnavailable)
		m.setState(false, nil)
		return
	}

	m.collector.SessionValidated(metrics.OutcomeAuthenticated)
	m.adopt(*user)
}

// sessionValid parses the expiry string and compares it against the clock.
// An unparseable expiry counts as expired.
func (m *Manager) sessionValid(expire string) bool {
	expiration, err := parseExpire(expire)
	if err != nil {
		m.logger.Error("Session manager: unparseable session expiry, treating as expired",
			"expire", expire)
		return false
	}

	return m.now().Before(expiration)
}

// parseExpire accepts RFC 3339 with or without fractional seconds, then the
// fixed fallback layout.
func parseExpire(value string) (time.Time, error) {
	if expiration, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return expiration, nil
	}

	return time.Parse(fallbackExpireLayout, value)
}

// loadOrFetchProfile prefers the cached record when it belongs to the
// session's user; otherwise it performs exactly one remote document fetch.
func (m *Manager) loadOrFetchProfile(ctx context.Context, userID string) (*model.UserAccount, error) {
	cached, err := m.profiles.Load()
	if err != nil {
		m.logger.Error("Session manager: failed to read cached profile",
			"error", err.Error())
	}

	if cached != nil {
		if cached.ID == userID {
			m.collector.CacheHit()
			return cached, nil
		}
		m.logger.Info("Session manager: cached profile belongs to another user, refetching",
			"cached_id", cached.ID,
			"user_id", userID)
	}

	m.collector.CacheMiss()

	account, err := m.fetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (m *Manager) fetchProfile(ctx context.Context, userID string) (*model.UserAccount, error) {
	m.collector.ProfileFetched()

	account, err := m.documents.GetDocument(ctx, m.usersCollection, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile document: %w", err)
	}

	return &account, nil
}

// clearSession performs a best-effort remote logout, clears the cached
// profile, and publishes the Unauthenticated state. Remote errors are
// swallowed: the local state is cleared regardless.
func (m *Manager) clearSession(ctx context.Context) {
	m.setState(true, nil)

	if err := m.accounts.DeleteCurrentSession(ctx); err != nil {
		m.logger.Debug("Session manager: best-effort remote logout failed",
			"error", err.Error())
	}

	if err := m.profiles.Clear(); err != nil {
		m.logger.Error("Session manager: failed to clear cached profile",
			"error", err.Error())
	}

	m.setState(false, nil)
}

// Logout signs the user out. Idempotent: repeated calls end in the same
// Unauthenticated state without error.
func (m *Manager) Logout(ctx context.Context) {
	m.logger.Info("Session manager: logging out")
	m.clearSession(ctx)
}

// RegisterParams contains the fields collected by the email sign-up form.
type RegisterParams struct {
	FirstName string
	LastName  string
	Role      string
	Email     string
	Password  string
}

// RegisterWithEmail creates a remote account, stores its profile document,
// and establishes a session. Any step failing aborts the remainder: no local
// state is committed and the error is surfaced to the caller. Remote state
// created by earlier steps is not rolled back.
func (m *Manager) RegisterWithEmail(ctx context.Context, params RegisterParams) error {
	m.setState(true, nil)

	account, err := m.registerWithEmail(ctx, params)
	if err != nil {
		m.logger.Error("Session manager: registration failed",
			"email", params.Email,
			"error", err.Error())
		m.collector.RegistrationAttempt(false)
		m.setState(false, nil)
		return err
	}

	m.logger.Info("Session manager: registration completed",
		"user_id", account.ID)
	m.collector.RegistrationAttempt(true)
	m.adopt(*account)

	return nil
}

func (m *Manager) registerWithEmail(ctx context.Context, params RegisterParams) (*model.UserAccount, error) {
	role := params.Role
	if role == "" {
		role = model.RoleUser
	}

	name := params.FirstName + " " + params.LastName
	remote, err := m.accounts.CreateAccount(ctx, params.Email, params.Password, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	account := model.UserAccount{
		ID:        remote.ID,
		Email:     remote.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Role:      role,
		CreatedAt: remote.CreatedAt,
	}

	if err := m.documents.CreateDocument(ctx, m.usersCollection, account.ID, account); err != nil {
		return nil, fmt.Errorf("failed to create profile document: %w", err)
	}

	if _, err := m.accounts.CreateEmailSession(ctx, params.Email, params.Password); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return &account, nil
}

// LoginWithEmail creates a session from credentials and fetches the profile
// document for the session's user.
func (m *Manager) LoginWithEmail(ctx context.Context, email, password string) error {
	m.setState(true, nil)

	sess, err := m.accounts.CreateEmailSession(ctx, email, password)
	if err != nil {
		m.logger.Error("Session manager: email login failed",
			"email", email,
			"error", err.Error())
		m.collector.LoginAttempt("email", false)
		m.setState(false, nil)
		return fmt.Errorf("failed to create session: %w", err)
	}

	account, err := m.fetchProfile(ctx, sess.UserID)
	if err != nil {
		m.logger.Error("Session manager: profile fetch after login failed",
			"user_id", sess.UserID,
			"error", err.Error())
		m.collector.LoginAttempt("email", false)
		m.setState(false, nil)
		return err
	}

	m.logger.Info("Session manager: email login completed",
		"user_id", account.ID)
	m.collector.LoginAttempt("email", true)
	m.adopt(*account)

	return nil
}

// RequestPhoneCode dispatches a one-time code to the phone number and returns
// the provisional user id for the later code exchange. The published state is
// not changed.
func (m *Manager) RequestPhoneCode(ctx context.Context, phone string) (string, error) {
	token, err := m.accounts.CreatePhoneToken(ctx, NormalizePhone(phone))
	if err != nil {
		m.logger.Error("Session manager: failed to dispatch phone code",
			"error", err.Error())
		return "", fmt.Errorf("failed to create phone token: %w", err)
	}

	return token.UserID, nil
}

// LoginWithPhone exchanges the one-time code for a session and fetches the
// profile document. A missing document is not a failure: the session is
// established, and ErrProfileIncomplete tells the caller to route to the
// profile setup flow.
func (m *Manager) LoginWithPhone(ctx context.Context, userID, code string) error {
	m.setState(true, nil)

	sess, err := m.accounts.CreatePhoneSession(ctx, userID, code)
	if err != nil {
		m.logger.Error("Session manager: phone login failed",
			"user_id", userID,
			"error", err.Error())
		m.collector.LoginAttempt("phone", false)
		m.setState(false, nil)
		return fmt.Errorf("failed to create session: %w", err)
	}

	account, err := m.fetchProfile(ctx, sess.UserID)
	if errors.Is(err, model.ErrNotFound) {
		m.logger.Info("Session manager: phone user has no profile yet",
			"user_id", sess.UserID)
		m.collector.LoginAttempt("phone", false)
		m.setState(false, nil)
		return ErrProfileIncomplete
	}
	if err != nil {
		m.logger.Error("Session manager: profile fetch after phone login failed",
			"user_id", sess.UserID,
			"error", err.Error())
		m.collector.LoginAttempt("phone", false)
		m.setState(false, nil)
		return err
	}

	m.logger.Info("Session manager: phone login completed",
		"user_id", account.ID)
	m.collector.LoginAttempt("phone", true)
	m.adopt(*account)

	return nil
}

// VerifyPhoneCode exchanges the code for a session and reports whether a
// profile already exists for that user, without changing the published state.
func (m *Manager) VerifyPhoneCode(ctx context.Context, userID, code string) (bool, error) {
	sess, err := m.accounts.CreatePhoneSession(ctx, userID, code)
	if err != nil {
		return false, fmt.Errorf("failed to exchange verification code: %w", err)
	}

	account, err := m.documents.GetDocument(ctx, m.usersCollection, sess.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch profile document: %w", err)
	}

	return account.Email != "", nil
}

// ProfileParams contains the fields collected by the profile setup form shown
// to phone-first signups.
type ProfileParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CompleteProfile finishes a phone-first signup over an already-established
// session: it sets the account name, first password and email, then creates
// the profile document. The four remote writes form a saga with no rollback;
// a later step failing leaves earlier remote mutations in place while the
// local state stays Unauthenticated.
func (m *Manager) CompleteProfile(ctx context.Context, params ProfileParams) error {
	m.setState(true, nil)

	account, err := m.completeProfile(ctx, params)
	if err != nil {
		m.logger.Error("Session manager: profile completion failed",
			"error", err.Error())
		m.setState(false, nil)
		return err
	}

	m.logger.Info("Session manager: profile completion succeeded",
		"user_id", account.ID)
	m.adopt(*account)

	return nil
}

func (m *Manager) completeProfile(ctx context.Context, params ProfileParams) (*model.UserAccount, error) {
	remote, err := m.accounts.UpdateName(ctx, params.FirstName+" "+params.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to update account name: %w", err)
	}

	if _, err := m.accounts.CreatePassword(ctx, params.Password); err != nil {
		return nil, fmt.Errorf("failed to set account password: %w", err)
	}

	if _, err := m.accounts.UpdateEmail(ctx, params.Email, params.Password); err != nil {
		return nil, fmt.Errorf("failed to update account email: %w", err)
	}

	account := model.UserAccount{
		ID:        remote.ID,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Role:      model.RoleUser,
		CreatedAt: remote.CreatedAt,
	}

	if err := m.documents.CreateDocument(ctx, m.usersCollection, account.ID, account); err != nil {
		return nil, fmt.Errorf("failed to create profile document: %w", err)
	}

	return &account, nil
}

// UpdateName changes the remote display name. The cached profile is
// deliberately untouched; the new name is picked up on the next full session
// validation.
func (m *Manager) UpdateName(ctx context.Context, name string) error {
	if _, err := m.accounts.UpdateName(ctx, name); err != nil {
		return fmt.Errorf("failed to update name: %w", err)
	}

	return nil
}

// UpdateEmail changes the remote account email. Like UpdateName, it does not
// touch the cached profile.
func (m *Manager) UpdateEmail(ctx context.Context, email, password string) error {
	if _, err := m.accounts.UpdateEmail(ctx, email, password); err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}

	return nil
}

// UpdatePassword replaces the account password, verifying the old one.
func (m *Manager) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	if _, err := m.accounts.UpdatePassword(ctx, newPassword, oldPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
