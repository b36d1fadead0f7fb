package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"iil_api/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	mu        sync.Mutex
	down      bool
	failWrite bool
	nextID    int
	data      map[string][]domain.Document
	listErr   error
}

func newFakeStore() *fakeStore { return &fakeStore{data: map[string][]domain.Document{}} }

func (f *fakeStore) Create(ctx context.Context, coll string, record any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return "", domain.ErrStoreUnavailable
	}
	if f.failWrite {
		return "", fmt.Errorf("%w: disk full", domain.ErrWriteFailure)
	}
	b, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	f.nextID++
	id := fmt.Sprintf("%024x", f.nextID)
	doc["_id"] = id
	f.data[coll] = append(f.data[coll], doc)
	return id, nil
}

func (f *fakeStore) Query(ctx context.Context, coll string, filter domain.Filter, limit int64) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, domain.ErrStoreUnavailable
	}
	out := []domain.Document{}
	for _, d := range f.data[coll] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if matches(d, filter) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) FindOne(ctx context.Context, coll string, filter domain.Filter) (domain.Document, error) {
	rows, err := f.Query(ctx, coll, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

func (f *fakeStore) Count(ctx context.Context, coll string, filter domain.Filter) (int64, error) {
	rows, err := f.Query(ctx, coll, filter, 0)
	return int64(len(rows)), err
}

func (f *fakeStore) Available() bool { return !f.down }
func (f *fakeStore) Name() string    { return "iil" }
func (f *fakeStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	names := []string{}
	for k := range f.data {
		names = append(names, k)
	}
	return names, nil
}

func (f *fakeStore) put(coll string, doc domain.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	doc["_id"] = fmt.Sprintf("%024x", f.nextID)
	f.data[coll] = append(f.data[coll], doc)
}

func (f *fakeStore) snapshot(coll string) []domain.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Document(nil), f.data[coll]...)
}

func matches(d domain.Document, filter domain.Filter) bool {
	for k, v := range filter {
		if fmt.Sprint(d[k]) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}

type fakeLock struct {
	held     bool
	err      error
	released int
}

func (l *fakeLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held {
		return nil, false, nil
	}
	l.held = true
	return func() { l.held = false; l.released++ }, true, nil
}

var errBoom = errors.New("boom")
