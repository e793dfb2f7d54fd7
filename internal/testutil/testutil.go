// Package testutil holds fakes shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/logging"
	"github.com/dmitrijs2005/techmarket/internal/storage"
)

func MakeNoopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})))
}

// FlakyStore wraps a MemoryStore and fails the operations whose flag is set.
type FlakyStore struct {
	*storage.MemoryStore

	mu         sync.Mutex
	FailGet    bool
	FailSet    bool
	FailRemove bool
}

func NewFlakyStore() *FlakyStore {
	return &FlakyStore{MemoryStore: storage.NewMemoryStore()}
}

// FailAll toggles every failure flag at once.
func (f *FlakyStore) FailAll(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailGet, f.FailSet, f.FailRemove = fail, fail, fail
}

func (f *FlakyStore) fails(flag *bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *flag
}

func (f *FlakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.fails(&f.FailGet) {
		return nil, fmt.Errorf("%w: get %s: injected", common.ErrStorageUnavailable, key)
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *FlakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.fails(&f.FailSet) {
		return fmt.Errorf("%w: set %s: injected", common.ErrStorageUnavailable, key)
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *FlakyStore) SetAll(ctx context.Context, values map[string][]byte) error {
	if f.fails(&f.FailSet) {
		return fmt.Errorf("%w: set all: injected", common.ErrStorageUnavailable)
	}
	return f.MemoryStore.SetAll(ctx, values)
}

func (f *FlakyStore) Remove(ctx context.Context, key string) error {
	if f.fails(&f.FailRemove) {
		return fmt.Errorf("%w: remove %s: injected", common.ErrStorageUnavailable, key)
	}
	return f.MemoryStore.Remove(ctx, key)
}
