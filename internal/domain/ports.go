package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("database not available")
	ErrWriteFailure     = errors.New("store write failed")
)

// Document is a stored record with its "_id" already rendered as a string.
type Document map[string]any

// Filter is a field-match filter; an empty or nil Filter matches everything.
type Filter map[string]any

type DocumentStore interface {
	// Write path
	Create(ctx context.Context, collection string, record any) (string, error)

	// Read paths
	Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// Diagnostics
	Available() bool
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Locker guards the seed routine across replicas. ok is false when another
// holder owns the key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}
