// Package session tracks which registered user, if any, is logged in.
//
// The logged-in user is persisted as a pointer (the normalized email) under
// common.CurrentUserKey. A pointer that no longer resolves to a stored
// record is treated as anonymous.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/logging"
	"github.com/dmitrijs2005/techmarket/internal/storage"
	"github.com/dmitrijs2005/techmarket/internal/users"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Directory is the subset of users.Directory the manager needs.
type Directory interface {
	Get(ctx context.Context, email string) (users.Record, bool)
	Save(ctx context.Context, email string, password []byte, name, phone string) error
	Verify(ctx context.Context, email string, password []byte) (users.Record, bool)
}

type Manager struct {
	store  storage.Store
	users  Directory
	logger logging.Logger

	// fallback and cleared override the stored pointer when writing it
	// failed, so the session still behaves for the lifetime of the process.
	mu       sync.Mutex
	fallback string
	cleared  bool
}

func NewManager(store storage.Store, dir Directory, logger logging.Logger) *Manager {
	return &Manager{
		store:  store,
		users:  dir,
		logger: logger.With("component", "session"),
	}
}

// Login authenticates email/password and records the session. Unknown
// email and wrong password both yield common.ErrInvalidCredentials.
func (m *Manager) Login(ctx context.Context, email string, password []byte) (users.Record, error) {
	email = users.NormalizeEmail(email)

	rec, ok := m.users.Verify(ctx, email, password)
	if !ok {
		m.logger.Info(ctx, "login rejected", "email", email)
		return users.Record{}, common.ErrInvalidCredentials
	}

	m.setPointer(ctx, rec.Email)
	m.logger.Info(ctx, "login succeeded", "email", rec.Email)
	return rec, nil
}

// Register validates the form, creates the account and logs the new user in.
func (m *Manager) Register(ctx context.Context, r Registration) (users.Record, error) {
	if err := r.Validate(); err != nil {
		m.logger.Debug(ctx, "registration rejected by validation", "error", err)
		return users.Record{}, err
	}

	email := users.NormalizeEmail(r.Email)
	if _, exists := m.users.Get(ctx, email); exists {
		m.logger.Info(ctx, "registration rejected, email taken", "email", email)
		return users.Record{}, fmt.Errorf("%w: %s", common.ErrAlreadyRegistered, email)
	}

	if err := m.users.Save(ctx, email, r.Password, r.Name(), r.Phone); err != nil {
		m.logger.Error(ctx, "registration failed", "email", email, "error", err)
		return users.Record{}, fmt.Errorf("register %s: %w", email, err)
	}

	rec, ok := m.users.Get(ctx, email)
	if !ok {
		return users.Record{}, fmt.Errorf("register %s: %w", email, common.ErrNotFound)
	}

	m.setPointer(ctx, email)
	m.logger.Info(ctx, "user registered", "email", email)
	return rec, nil
}

// Logout clears the session. It is a no-op when nobody is logged in.
func (m *Manager) Logout(ctx context.Context) {
	err := m.store.Remove(ctx, common.CurrentUserKey)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = ""
	m.cleared = err != nil
	if err != nil {
		m.logger.Warn(ctx, "session pointer not removed", "error", err)
	}
}

// CurrentUser resolves the session pointer to a stored record.
func (m *Manager) CurrentUser(ctx context.Context) (users.Record, bool) {
	email := m.pointer(ctx)
	if email == "" {
		return users.Record{}, false
	}
	rec, ok := m.users.Get(ctx, email)
	if !ok {
		m.logger.Debug(ctx, "session pointer is dangling", "email", email)
		return users.Record{}, false
	}
	return rec, true
}

func (m *Manager) State(ctx context.Context) State {
	if _, ok := m.CurrentUser(ctx); ok {
		return Authenticated
	}
	return Anonymous
}

func (m *Manager) setPointer(ctx context.Context, email string) {
	err := m.store.Set(ctx, common.CurrentUserKey, []byte(email))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared = false
	if err != nil {
		m.logger.Warn(ctx, "session pointer not persisted", "email", email, "error", err)
		m.fallback = email
		return
	}
	m.fallback = ""
}

func (m *Manager) pointer(ctx context.Context) string {
	raw, err := m.store.Get(ctx, common.CurrentUserKey)
	if err != nil {
		m.logger.Warn(ctx, "session pointer unreadable", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.cleared:
		return ""
	case m.fallback != "":
		return m.fallback
	default:
		return users.NormalizeEmail(string(raw))
	}
}
