package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"iil_api/internal/adapters/observability"
	"iil_api/internal/domain"
)

// Store is a pass-through over one Mongo database. A Store with no database
// is valid and reports domain.ErrStoreUnavailable from every operation.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(db *mongo.Database) *Store {
	if db == nil {
		return &Store{}
	}
	return &Store{client: db.Client(), db: db}
}

// Connect dials uri and pings the primary. On any failure it still returns a
// usable (unavailable) Store alongside the error so callers can fail soft.
func Connect(ctx context.Context, uri, name string, timeout time.Duration) (*Store, error) {
	if uri == "" || name == "" {
		return &Store{}, errors.New("database url or name not set")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return &Store{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return &Store{}, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(name)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) Available() bool { return s.db != nil }

func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *Store) Create(ctx context.Context, collection string, record any) (string, error) {
	if s.db == nil {
		return "", domain.ErrStoreUnavailable
	}
	doc, err := toDocument(record)
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %v", domain.ErrWriteFailure, collection, err)
	}
	start := time.Now()
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	observability.ObserveStore(collection, "insert", err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("%w: insert %s: %v", domain.ErrWriteFailure, collection, err)
	}
	return idString(res.InsertedID), nil
}

func (s *Store) Query(ctx context.Context, collection string, filter domain.Filter, limit int64) ([]domain.Document, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	start := time.Now()
	cur, err := s.db.Collection(collection).Find(ctx, toFilter(filter), opts)
	if err != nil {
		observability.ObserveStore(collection, "find", err, time.Since(start))
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	var rows []bson.M
	err = cur.All(ctx, &rows)
	observability.ObserveStore(collection, "find", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	out := make([]domain.Document, 0, len(rows))
	for _, r := range rows {
		out = append(out, normalize(r))
	}
	return out, nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter domain.Filter) (domain.Document, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	start := time.Now()
	var row bson.M
	err := s.db.Collection(collection).FindOne(ctx, toFilter(filter)).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.ObserveStore(collection, "find_one", nil, time.Since(start))
		return nil, domain.ErrNotFound
	}
	observability.ObserveStore(collection, "find_one", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", collection, err)
	}
	return normalize(row), nil
}

func (s *Store) Count(ctx context.Context, collection string, filter domain.Filter) (int64, error) {
	if s.db == nil {
		return 0, domain.ErrStoreUnavailable
	}
	start := time.Now()
	n, err := s.db.Collection(collection).CountDocuments(ctx, toFilter(filter))
	observability.ObserveStore(collection, "count", err, time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// EnsureIndexes adds unique slug indexes so concurrent seeders cannot
// duplicate catalog entries. Existing duplicates make this fail.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if s.db == nil {
		return domain.ErrStoreUnavailable
	}
	for _, kind := range []domain.Kind{domain.KindCourse, domain.KindBlogPost} {
		coll := domain.Collection(kind)
		_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("slug_unique"),
		})
		if err != nil {
			return fmt.Errorf("index %s.slug: %w", coll, err)
		}
	}
	return nil
}
