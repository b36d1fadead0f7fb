//go:build integration || !unit

package mongodb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"iil_api/internal/domain"
	"iil_api/internal/storage/mongodb"
)

// startMongo runs an isolated mongo container; Docker picks the host port.
func startMongo(t *testing.T) *mongodb.Store {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mongo: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))

	var store *mongodb.Store
	if err := pool.Retry(func() error {
		var e error
		store, e = mongodb.Connect(context.Background(), uri, "iil_test", 5*time.Second)
		return e
	}); err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func pstr(s string) *string { return &s }

func TestStore_Mongo_CreateQueryCount(t *testing.T) {
	store := startMongo(t)
	ctx := context.Background()

	if !store.Available() || store.Name() != "iil_test" {
		t.Fatalf("unexpected store state: available=%v name=%q", store.Available(), store.Name())
	}

	n, err := store.Count(ctx, "enquiry", nil)
	if err != nil || n != 0 {
		t.Fatalf("Count on empty: %d %v", n, err)
	}
	rows, err := store.Query(ctx, "enquiry", nil, 0)
	if err != nil || rows == nil || len(rows) != 0 {
		t.Fatalf("Query on empty should be an empty slice: %v %v", rows, err)
	}

	in := domain.Enquiry{ID: "ignored", Name: "Riya", Email: "riya@example.com", CourseInterest: pstr("IELTS")}
	id, err := store.Create(ctx, "enquiry", in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" || id == "ignored" {
		t.Fatalf("expected store-assigned id, got %q", id)
	}
	// same payload twice is kept twice
	if _, err := store.Create(ctx, "enquiry", in); err != nil {
		t.Fatalf("Create dup: %v", err)
	}

	doc, err := store.FindOne(ctx, "enquiry", domain.Filter{"_id": id})
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	got, err := domain.ValidateEnquiry(doc, domain.Lenient)
	if err != nil {
		t.Fatalf("stored doc invalid: %v", err)
	}
	if got.ID != id || got.Name != in.Name || got.Email != in.Email || *got.CourseInterest != "IELTS" || got.Phone != nil {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if n, _ := store.Count(ctx, "enquiry", nil); n != 2 {
		t.Fatalf("expected 2 enquiries, got %d", n)
	}
	rows, err = store.Query(ctx, "enquiry", nil, 1)
	if err != nil || len(rows) != 1 {
		t.Fatalf("limit 1: %d %v", len(rows), err)
	}

	if _, err := store.FindOne(ctx, "enquiry", domain.Filter{"email": "nobody@example.com"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	names, err := store.ListCollectionNames(ctx)
	if err != nil || len(names) != 1 || names[0] != "enquiry" {
		t.Fatalf("collections: %v %v", names, err)
	}
}

func TestStore_Mongo_UniqueSlug(t *testing.T) {
	store := startMongo(t)
	ctx := context.Background()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	c := domain.Course{Slug: "ielts-coaching", Title: "IELTS", Category: "Exam Prep", ShortDescription: "x",
		Highlights: []string{}, Syllabus: []string{}}
	if _, err := store.Create(ctx, "course", c); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := store.Create(ctx, "course", c); !errors.Is(err, domain.ErrWriteFailure) {
		t.Fatalf("expected ErrWriteFailure on duplicate slug, got %v", err)
	}
}
