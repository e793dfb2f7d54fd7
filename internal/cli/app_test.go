package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/config"
	"github.com/dmitrijs2005/techmarket/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DBPath = filepath.Join(t.TempDir(), "techmarket.db")
	c.LogLevel = "error"
	c.KDF = config.KDF{Time: 1, MemoryKiB: 1024, Threads: 1}
	return c
}

func TestNewApp_PersistsSessionAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	_, isSQLite := a.store.(*storage.SQLiteStore)
	require.True(t, isSQLite)

	require.NoError(t, a.Handle(ctx, LoginSubmitted{Email: common.DemoEmail, Password: []byte(common.DemoPassword)}))
	require.NoError(t, a.Handle(ctx, SearchChanged{Query: "pro"}))
	require.NoError(t, a.store.Close())

	b, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.store.Close() })

	u, ok := b.session.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, common.DemoEmail, u.Email)
	assert.Equal(t, "pro", b.catalog.SearchText())
}

func TestNewApp_FallsBackToMemory(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg.DBPath = filepath.Join(blocker, "techmarket.db")

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	_, isMemory := a.store.(*storage.MemoryStore)
	assert.True(t, isMemory)
}

func TestNewApp_CreatesDatabaseDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBPath = filepath.Join(t.TempDir(), "nested", "techmarket.db")

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.store.Close() })

	_, isSQLite := a.store.(*storage.SQLiteStore)
	assert.True(t, isSQLite)
}

func TestNewApp_BadCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.CatalogFile = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestNewApp_NoSeed(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.SeedDemoUser = false

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.store.Close() })

	err = a.Handle(ctx, LoginSubmitted{Email: common.DemoEmail, Password: []byte(common.DemoPassword)})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRun_GreetsAndExits(t *testing.T) {
	capturePrintln(t)

	cfg := testConfig(t)
	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	a.out = &out
	a.reader = bufio.NewReader(strings.NewReader("list\nexit\n"))

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to TechMarket!")
	assert.Contains(t, out.String(), "products found")
}
