// Package users stores registered accounts as a single JSON map keyed by
// lowercased email under common.UsersKey.
package users

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/cryptox"
	"github.com/dmitrijs2005/techmarket/internal/logging"
	"github.com/dmitrijs2005/techmarket/internal/storage"
)

type Directory struct {
	store  storage.Store
	logger logging.Logger
	kdf    cryptox.KDFParams
	now    func() time.Time
}

func NewDirectory(store storage.Store, logger logging.Logger, kdf cryptox.KDFParams) *Directory {
	return &Directory{
		store:  store,
		logger: logger.With("component", "users"),
		kdf:    kdf,
		now:    time.Now,
	}
}

// NormalizeEmail trims and lowercases an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetAll returns every stored record keyed by normalized email. Missing,
// unreadable or corrupt data yields an empty map.
func (d *Directory) GetAll(ctx context.Context) map[string]Record {
	all, err := d.load(ctx)
	if err != nil {
		d.logger.Warn(ctx, "users unavailable, treating as empty", "error", err)
		return map[string]Record{}
	}
	return all
}

// Get looks up a record by email.
func (d *Directory) Get(ctx context.Context, email string) (Record, bool) {
	r, ok := d.GetAll(ctx)[NormalizeEmail(email)]
	return r, ok
}

// Save creates or replaces the record for email. The password is hashed
// with a fresh salt; the plaintext is never stored.
func (d *Directory) Save(ctx context.Context, email string, password []byte, name, phone string) error {
	email = NormalizeEmail(email)

	cred, err := cryptox.HashPassword(password, d.kdf)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	all, err := d.load(ctx)
	if err != nil {
		return err
	}
	all[email] = Record{
		Email:      email,
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		CreatedAt:  d.now().UTC(),
		Credential: cred,
	}
	if err := d.put(ctx, all); err != nil {
		return err
	}

	d.logger.Info(ctx, "user saved", "email", email)
	return nil
}

// burn is a test seam for cryptox.Burn.
var burn = cryptox.Burn

// Verify checks password against the stored credential. Unknown emails
// and legacy plaintext records still pay for one key derivation on failure.
func (d *Directory) Verify(ctx context.Context, email string, password []byte) (Record, bool) {
	rec, ok := d.Get(ctx, email)
	if !ok {
		burn(password, d.kdf)
		return Record{}, false
	}

	if rec.Credential == nil {
		if rec.LegacyPassword == "" ||
			subtle.ConstantTimeCompare([]byte(rec.LegacyPassword), password) != 1 {
			burn(password, d.kdf)
			return Record{}, false
		}
		return d.upgrade(ctx, rec, password), true
	}

	if !rec.Credential.Verify(password) {
		return Record{}, false
	}
	return rec, true
}

// Bootstrap seeds the demo account when it is not yet registered.
func (d *Directory) Bootstrap(ctx context.Context) error {
	if _, ok := d.Get(ctx, common.DemoEmail); ok {
		return nil
	}
	if err := d.Save(ctx, common.DemoEmail, []byte(common.DemoPassword), common.DemoName, ""); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	return nil
}

// upgrade replaces a plaintext password with a hashed credential. Failure
// to persist is logged; the login itself still succeeds.
func (d *Directory) upgrade(ctx context.Context, rec Record, password []byte) Record {
	cred, err := cryptox.HashPassword(password, d.kdf)
	if err != nil {
		d.logger.Warn(ctx, "legacy password upgrade failed", "email", rec.Email, "error", err)
		return rec
	}
	rec.Credential = cred
	rec.LegacyPassword = ""

	all, err := d.load(ctx)
	if err == nil {
		all[rec.Email] = rec
		err = d.put(ctx, all)
	}
	if err != nil {
		d.logger.Warn(ctx, "legacy password upgrade not persisted", "email", rec.Email, "error", err)
		return rec
	}

	d.logger.Info(ctx, "legacy password upgraded", "email", rec.Email)
	return rec
}

// load reads the users map. It fails only when the store itself fails;
// absent or corrupt data is returned as an empty map.
func (d *Directory) load(ctx context.Context) (map[string]Record, error) {
	raw, err := d.store.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, err
	}
	all := map[string]Record{}
	if len(raw) == 0 {
		return all, nil
	}

	var stored map[string]Record
	if err := json.Unmarshal(raw, &stored); err != nil {
		d.logger.Warn(ctx, "users data corrupt, ignoring", "error", err)
		return all, nil
	}
	for k, r := range stored {
		key := NormalizeEmail(k)
		if key == "" {
			continue
		}
		r.Email = key
		all[key] = r
	}
	return all, nil
}

func (d *Directory) put(ctx context.Context, all map[string]Record) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := d.store.Set(ctx, common.UsersKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
