package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/techmarket/internal/cart"
	"github.com/dmitrijs2005/techmarket/internal/catalog"
	"github.com/dmitrijs2005/techmarket/internal/config"
	"github.com/dmitrijs2005/techmarket/internal/cryptox"
	"github.com/dmitrijs2005/techmarket/internal/notify"
	"github.com/dmitrijs2005/techmarket/internal/session"
	"github.com/dmitrijs2005/techmarket/internal/storage"
	"github.com/dmitrijs2005/techmarket/internal/testutil"
	"github.com/dmitrijs2005/techmarket/internal/users"
	"github.com/stretchr/testify/require"
)

var fastKDF = cryptox.KDFParams{Time: 1, MemoryKiB: 1024, Threads: 1}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "lap-1", Title: "Laptop One", Price: 1200, Category: "laptop", Brand: "acme", RAM: "16", Storage: "512"},
		{ID: "ph-1", Title: "Phone One", Price: 800, Category: "phone", Brand: "acme", RAM: "8", Storage: "128"},
		{ID: "lap-2", Title: "Laptop Two", Price: 2000, Category: "laptop", Brand: "globex", RAM: "32", Storage: "1024"},
	}
}

type testApp struct {
	*App
	notes *notify.Recorder
	out   *bytes.Buffer
	store storage.Store
}

func newTestApp(t *testing.T, input string) testApp {
	t.Helper()
	ctx := context.Background()
	log := testutil.MakeNoopLogger()
	store := storage.NewMemoryStore()

	dir := users.NewDirectory(store, log, fastKDF)
	require.NoError(t, dir.Bootstrap(ctx))

	rec := notify.NewRecorder()
	out := &bytes.Buffer{}
	a := &App{
		config:   &config.Config{},
		logger:   log,
		store:    store,
		session:  session.NewManager(store, dir, log),
		catalog:  catalog.New(testProducts(), store, log),
		cart:     cart.New(),
		notifier: rec,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	return testApp{App: a, notes: rec, out: out, store: store}
}

func (ta testApp) lastNote(t *testing.T) notify.Notification {
	t.Helper()
	n, ok := ta.notes.Last()
	require.True(t, ok, "expected a notification")
	return n
}
