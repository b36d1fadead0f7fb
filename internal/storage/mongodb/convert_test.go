package mongodb

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"iil_api/internal/domain"
)

func TestToDocument_DropsClientID(t *testing.T) {
	d, err := toDocument(map[string]any{"_id": "client-chosen", "name": "A"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, e := range d {
		if e.Key == "_id" {
			t.Fatalf("_id should be stripped: %v", d)
		}
	}
	if len(d) != 1 || d[0].Key != "name" {
		t.Fatalf("unexpected doc: %v", d)
	}

	// struct IDs are bson:"-" and never reach the store
	d, err = toDocument(domain.Enquiry{ID: "x", Name: "A", Email: "a@b.co"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	keys := make([]string, 0, len(d))
	for _, e := range d {
		keys = append(keys, e.Key)
	}
	want := []string{"name", "email", "phone", "course_interest", "message"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
}

func TestToFilter_ObjectIDHex(t *testing.T) {
	oid := primitive.NewObjectID()
	f := toFilter(domain.Filter{"_id": oid.Hex(), "slug": "x"})
	if f["_id"] != oid {
		t.Fatalf("expected ObjectID, got %#v", f["_id"])
	}
	if f["slug"] != "x" {
		t.Fatalf("slug should pass through")
	}
	if f := toFilter(domain.Filter{"_id": "not-hex"}); f["_id"] != "not-hex" {
		t.Fatalf("non-hex id should pass through, got %#v", f["_id"])
	}
	if f := toFilter(nil); len(f) != 0 {
		t.Fatalf("nil filter should be empty")
	}
}

func TestNormalize(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	doc := normalize(bson.M{
		"_id":          oid,
		"highlights":   bson.A{"a", "b"},
		"social_links": bson.M{"x": "https://x.com"},
		"meta":         bson.D{{Key: "k", Value: int32(1)}},
		"published_on": primitive.NewDateTimeFromTime(when),
	})
	if doc["_id"] != oid.Hex() {
		t.Fatalf("_id = %#v", doc["_id"])
	}
	if !reflect.DeepEqual(doc["highlights"], []any{"a", "b"}) {
		t.Fatalf("highlights = %#v", doc["highlights"])
	}
	if !reflect.DeepEqual(doc["social_links"], map[string]any{"x": "https://x.com"}) {
		t.Fatalf("social_links = %#v", doc["social_links"])
	}
	if !reflect.DeepEqual(doc["meta"], map[string]any{"k": int32(1)}) {
		t.Fatalf("meta = %#v", doc["meta"])
	}
	if got, ok := doc["published_on"].(time.Time); !ok || !got.Equal(when) {
		t.Fatalf("published_on = %#v", doc["published_on"])
	}
}

func TestUnavailableStore(t *testing.T) {
	s := New(nil)
	if s.Available() || s.Name() != "" {
		t.Fatalf("nil db should be unavailable")
	}
	if _, err := s.Create(context.Background(), "enquiry", map[string]any{}); err != domain.ErrStoreUnavailable {
		t.Fatalf("Create err = %v", err)
	}
	if _, err := s.Query(context.Background(), "course", nil, 0); err != domain.ErrStoreUnavailable {
		t.Fatalf("Query err = %v", err)
	}
	if _, err := s.Count(context.Background(), "course", nil); err != domain.ErrStoreUnavailable {
		t.Fatalf("Count err = %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close err = %v", err)
	}
}
