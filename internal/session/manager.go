package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/framez-app/framez/internal/common"
	"github.com/framez-app/framez/internal/imagex"
	"github.com/framez-app/framez/internal/logging"
	"github.com/framez-app/framez/internal/securestore"
	"github.com/framez-app/framez/internal/timeago"
	"github.com/framez-app/framez/internal/validation"
)

// Manager is the single owner of the account registry and the persisted
// session. It is constructed once at startup and injected into the
// presentation layer; tests build isolated managers over in-memory stores.
//
// A mutex serializes registry writes so two concurrent registrations cannot
// both pass the uniqueness check before either write lands. That closes the
// in-process race; cross-process locking is out of scope for a single-user
// local store.
type Manager struct {
	store  securestore.Store
	tokens *TokenIssuer
	log    logging.Logger

	mu sync.Mutex
}

func NewManager(store securestore.Store, tokens *TokenIssuer, log logging.Logger) *Manager {
	return &Manager{store: store, tokens: tokens, log: log}
}

// Register validates the input and appends a new account to the registry.
// It does not establish a session; the caller is expected to log in next.
//
// Error taxonomy: common.ErrEmptyField, common.ErrInvalidEmail,
// common.ErrDuplicateEmail, *WeakPasswordError (via errors.As), and
// *securestore.StorageError for persistence failures.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return common.ErrEmptyField
	}
	if !validation.IsValidEmail(email) {
		return common.ErrInvalidEmail
	}

	// Uniqueness is re-checked under the lock immediately before the write;
	// the registry write itself is a whole-value upsert.
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, err := m.loadRegistry(ctx)
	if err != nil {
		return err
	}

	// A taken email always reports as taken, even when the password would
	// have been rejected too.
	for _, a := range accounts {
		if a.Email == email {
			return common.ErrDuplicateEmail
		}
	}

	if check := validation.CheckPassword(password); !check.Valid {
		return &WeakPasswordError{Failures: check.Failures}
	}

	accounts = append(accounts, Account{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: password,
	})

	if err := m.saveRegistry(ctx, accounts); err != nil {
		return err
	}

	m.log.Info(ctx, "account registered", "email", email)
	return nil
}

// Login verifies the credentials against the registry, mints a fresh token,
// and persists token plus user snapshot atomically. Unknown email and wrong
// password return the same common.ErrInvalidCredentials.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, err := m.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	var matched *Account
	for i := range accounts {
		if accounts[i].Email == email && accounts[i].Password == password {
			matched = &accounts[i]
			break
		}
	}
	if matched == nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := m.tokens.Issue(matched.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	user := matched.User()
	userData, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	err = m.store.SetItems(ctx, map[string][]byte{
		common.KeySessionToken: []byte(token),
		common.KeyCurrentUser:  userData,
	})
	if err != nil {
		return nil, err
	}

	m.log.Info(ctx, "login successful", "user_id", user.ID)
	return &Session{Token: token, User: user}, nil
}

// Logout deletes the session token and the cached user. It is idempotent:
// logging out while unauthenticated is not an error.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.DeleteItem(ctx, common.KeySessionToken); err != nil {
		return err
	}
	if err := m.store.DeleteItem(ctx, common.KeyCurrentUser); err != nil {
		return err
	}

	m.log.Info(ctx, "logged out")
	return nil
}

// Restore reads the persisted session at startup. It returns nil when the
// device is unauthenticated and never fails: a partially corrupt store
// (token without user, undecodable user blob, storage error) is logged and
// treated conservatively as unauthenticated. The cached user is returned
// as-is, without re-validation against the registry.
func (m *Manager) Restore(ctx context.Context) *Session {
	token, err := m.store.GetItem(ctx, common.KeySessionToken)
	if err != nil {
		m.log.Warn(ctx, "session restore failed, treating as unauthenticated", "error", err)
		return nil
	}
	if token == nil {
		return nil
	}

	userData, err := m.store.GetItem(ctx, common.KeyCurrentUser)
	if err != nil {
		m.log.Warn(ctx, "session restore failed, treating as unauthenticated", "error", err)
		return nil
	}
	if userData == nil {
		m.log.Warn(ctx, "session token present without cached user, treating as unauthenticated")
		return nil
	}

	var user User
	if err := json.Unmarshal(userData, &user); err != nil {
		m.log.Warn(ctx, "cached user is corrupt, treating as unauthenticated", "error", err)
		return nil
	}

	attrs := []any{"user_id", user.ID}
	if issuedAt, err := m.tokens.IssuedAt(string(token)); err == nil {
		attrs = append(attrs, "session_age", timeago.Format(time.Since(issuedAt)))
	}
	m.log.Info(ctx, "session restored", attrs...)

	return &Session{Token: string(token), User: user}
}

// UpdateAvatar sets the avatar image reference on the account with the given
// email and returns the reference as stored. Local file URIs are inlined as
// data URIs so the stored reference stays usable after the source file
// moves; remote URLs and existing data URIs are stored as-is. If the account
// is the currently cached user, the snapshot is refreshed too.
//
// Returns common.ErrInvalidAvatar for a reference shape the app does not
// accept and common.ErrorNotFound for an unknown email.
func (m *Manager) UpdateAvatar(ctx context.Context, email, uri string) (string, error) {
	if !imagex.IsValidImageURI(uri) {
		return "", common.ErrInvalidAvatar
	}

	if strings.HasPrefix(uri, "file://") {
		inlined, err := imagex.ToDataURI(uri)
		if err != nil {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidAvatar, err)
		}
		uri = inlined
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, err := m.loadRegistry(ctx)
	if err != nil {
		return "", err
	}

	var account *Account
	for i := range accounts {
		if accounts[i].Email == email {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return "", common.ErrorNotFound
	}

	account.Avatar = &uri
	if err := m.saveRegistry(ctx, accounts); err != nil {
		return "", err
	}

	if err := m.refreshCachedUser(ctx, *account); err != nil {
		return "", err
	}

	m.log.Info(ctx, "avatar updated", "user_id", account.ID)
	return uri, nil
}

// refreshCachedUser rewrites the cached user snapshot when it belongs to the
// given account. A missing or undecodable snapshot is left alone; restore
// already treats those as unauthenticated.
func (m *Manager) refreshCachedUser(ctx context.Context, account Account) error {
	data, err := m.store.GetItem(ctx, common.KeyCurrentUser)
	if err != nil || data == nil {
		return err
	}

	var cached User
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil
	}
	if cached.ID != account.ID {
		return nil
	}

	updated, err := json.Marshal(account.User())
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return m.store.SetItem(ctx, common.KeyCurrentUser, updated)
}

// CheckEmailExists reports whether an account with the exact email is
// already registered.
func (m *Manager) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, err := m.loadRegistry(ctx)
	if err != nil {
		return false, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *Manager) loadRegistry(ctx context.Context) ([]Account, error) {
	data, err := m.store.GetItem(ctx, common.KeyRegistry)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return accounts, nil
}

func (m *Manager) saveRegistry(ctx context.Context, accounts []Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return m.store.SetItem(ctx, common.KeyRegistry, data)
}
