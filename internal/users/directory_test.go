package users

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/cryptox"
	"github.com/dmitrijs2005/techmarket/internal/storage"
	"github.com/dmitrijs2005/techmarket/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastKDF = cryptox.KDFParams{Time: 1, MemoryKiB: 1024, Threads: 1}

func newDirectory(t *testing.T, store storage.Store) *Directory {
	t.Helper()
	d := NewDirectory(store, testutil.MakeNoopLogger(), fastKDF)
	d.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return d
}

func TestGetAll_AbsentIsEmpty(t *testing.T) {
	d := newDirectory(t, storage.NewMemoryStore())

	all := d.GetAll(context.Background())
	require.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGetAll_CorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, common.UsersKey, []byte("{not json")))

	d := newDirectory(t, store)
	assert.Empty(t, d.GetAll(ctx))

	_, ok := d.Get(ctx, "anyone@example.com")
	assert.False(t, ok)
}

func TestGetAll_UnavailableIsEmpty(t *testing.T) {
	store := testutil.NewFlakyStore()
	store.FailGet = true

	d := newDirectory(t, store)
	assert.Empty(t, d.GetAll(context.Background()))
}

func TestSave_NormalizesEmailAndHashes(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	d := newDirectory(t, store)

	require.NoError(t, d.Save(ctx, "  Jane@Example.COM ", []byte("secret123"), "Jane Doe", "+1 555 123 4567"))

	rec, ok := d.Get(ctx, "jane@example.com")
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "Jane", rec.FirstName())
	assert.Equal(t, "+1 555 123 4567", rec.Phone)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), rec.CreatedAt)
	require.NotNil(t, rec.Credential)

	raw, err := store.Get(ctx, common.UsersKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret123")

	var stored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Contains(t, stored, "jane@example.com")
}

func TestSave_OverwritesExisting(t *testing.T) {
	ctx := context.Background()
	d := newDirectory(t, storage.NewMemoryStore())

	require.NoError(t, d.Save(ctx, "a@b.co", []byte("first111"), "First", ""))
	require.NoError(t, d.Save(ctx, "A@B.CO", []byte("second22"), "Second", ""))

	assert.Len(t, d.GetAll(ctx), 1)
	rec, _ := d.Get(ctx, "a@b.co")
	assert.Equal(t, "Second", rec.Name)

	_, ok := d.Verify(ctx, "a@b.co", []byte("first111"))
	assert.False(t, ok)
	_, ok = d.Verify(ctx, "a@b.co", []byte("second22"))
	assert.True(t, ok)
}

func TestSave_CorruptDataIsReplaced(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, common.UsersKey, []byte("[]garbage")))

	d := newDirectory(t, store)
	require.NoError(t, d.Save(ctx, "new@user.io", []byte("password1"), "New User", ""))

	assert.Len(t, d.GetAll(ctx), 1)
}

func TestSave_StoreFailure(t *testing.T) {
	store := testutil.NewFlakyStore()
	store.FailSet = true

	d := newDirectory(t, store)
	err := d.Save(context.Background(), "a@b.co", []byte("password1"), "Ab", "")
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	d := newDirectory(t, storage.NewMemoryStore())
	require.NoError(t, d.Save(ctx, "u@x.io", []byte("correct1"), "User", ""))

	rec, ok := d.Verify(ctx, "U@X.IO", []byte("correct1"))
	require.True(t, ok)
	assert.Equal(t, "u@x.io", rec.Email)

	_, ok = d.Verify(ctx, "u@x.io", []byte("wrong123"))
	assert.False(t, ok)

	_, ok = d.Verify(ctx, "nobody@x.io", []byte("correct1"))
	assert.False(t, ok)
}

func TestVerify_FailuresAlwaysDeriveKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	legacy := `{"old@shop.com":{"email":"old@shop.com","password":"plain123","name":"Old Timer"},` +
		`"empty@shop.com":{"email":"empty@shop.com","name":"No Password"}}`
	require.NoError(t, store.Set(ctx, common.UsersKey, []byte(legacy)))

	var burned int
	orig := burn
	burn = func(password []byte, p cryptox.KDFParams) {
		burned++
		orig(password, p)
	}
	t.Cleanup(func() { burn = orig })

	d := newDirectory(t, store)

	tests := []struct {
		name  string
		email string
		pw    string
	}{
		{"unknown email", "nobody@shop.com", "whatever1"},
		{"legacy wrong password", "old@shop.com", "wrong123"},
		{"legacy record without password", "empty@shop.com", "anything1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := burned
			_, ok := d.Verify(ctx, tt.email, []byte(tt.pw))
			assert.False(t, ok)
			assert.Equal(t, before+1, burned)
		})
	}

	_, ok := d.Verify(ctx, "old@shop.com", []byte("plain123"))
	require.True(t, ok)
	assert.Equal(t, len(tests), burned, "successful login does not burn")
}

func TestVerify_LegacyPlaintextIsUpgraded(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	legacy := `{"old@shop.com":{"email":"old@shop.com","password":"plain123","name":"Old Timer","createdAt":"2024-05-01T10:00:00Z"}}`
	require.NoError(t, store.Set(ctx, common.UsersKey, []byte(legacy)))

	d := newDirectory(t, store)

	_, ok := d.Verify(ctx, "old@shop.com", []byte("wrong"))
	require.False(t, ok)

	rec, ok := d.Verify(ctx, "old@shop.com", []byte("plain123"))
	require.True(t, ok)
	assert.Equal(t, "Old Timer", rec.Name)

	stored, ok := d.Get(ctx, "old@shop.com")
	require.True(t, ok)
	assert.Empty(t, stored.LegacyPassword)
	require.NotNil(t, stored.Credential)
	assert.True(t, stored.Credential.Verify([]byte("plain123")))

	raw, _ := store.Get(ctx, common.UsersKey)
	assert.NotContains(t, string(raw), "plain123")
}

func TestBootstrap_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	d := newDirectory(t, storage.NewMemoryStore())

	require.NoError(t, d.Bootstrap(ctx))
	rec, ok := d.Verify(ctx, common.DemoEmail, []byte(common.DemoPassword))
	require.True(t, ok)
	assert.Equal(t, common.DemoName, rec.Name)

	require.NoError(t, d.Save(ctx, common.DemoEmail, []byte("changed99"), "Renamed", ""))
	require.NoError(t, d.Bootstrap(ctx))

	rec, _ = d.Get(ctx, common.DemoEmail)
	assert.Equal(t, "Renamed", rec.Name)
}

func TestBootstrap_StoreFailure(t *testing.T) {
	store := testutil.NewFlakyStore()
	store.FailAll(true)

	d := newDirectory(t, store)
	assert.ErrorIs(t, d.Bootstrap(context.Background()), common.ErrStorageUnavailable)
}
