package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"iil_api/internal/adapters/observability"
	"iil_api/internal/domain"
)

const seedLockKey = "seed:lock"

// SeedReport says how many sample documents went into each collection.
// Skipped is set when another replica held the seed lock.
type SeedReport struct {
	Inserted map[string]int
	Skipped  bool
}

type SeedService struct {
	store   domain.DocumentStore
	lock    domain.Locker
	lockTTL time.Duration
}

// NewSeedService builds a seeder. lock may be nil, in which case two
// processes starting together can both see an empty collection and both seed.
func NewSeedService(s domain.DocumentStore, lock domain.Locker, lockTTL time.Duration) *SeedService {
	return &SeedService{store: s, lock: lock, lockTTL: lockTTL}
}

type seedSet struct {
	collection string
	docs       []any
}

func seedSets() []seedSet {
	courses := sampleCourses()
	cs := make([]any, len(courses))
	for i := range courses {
		cs[i] = courses[i]
	}
	testimonials := sampleTestimonials()
	ts := make([]any, len(testimonials))
	for i := range testimonials {
		ts[i] = testimonials[i]
	}
	return []seedSet{
		{collection: domain.Collection(domain.KindCourse), docs: cs},
		{collection: domain.Collection(domain.KindTestimonial), docs: ts},
	}
}

// SeedIfEmpty inserts the sample courses and testimonials into whichever of
// the two collections is empty. Running it again is a no-op.
func (s *SeedService) SeedIfEmpty(ctx context.Context) (SeedReport, error) {
	rep := SeedReport{Inserted: map[string]int{}}
	if !s.store.Available() {
		return rep, domain.ErrStoreUnavailable
	}

	if s.lock != nil {
		release, ok, err := s.lock.Acquire(ctx, seedLockKey, s.lockTTL)
		if err != nil {
			return rep, fmt.Errorf("seed lock: %w", err)
		}
		if !ok {
			log.Info().Msg("seed lock held elsewhere, skipping seed")
			rep.Skipped = true
			return rep, nil
		}
		defer release()
	}

	sets := seedSets()
	counts := make([]int, len(sets))
	g, gctx := errgroup.WithContext(ctx)
	for i, set := range sets {
		i, set := i, set
		g.Go(func() error {
			n, err := s.seedCollection(gctx, set)
			counts[i] = n
			return err
		})
	}
	err := g.Wait()
	for i, set := range sets {
		rep.Inserted[set.collection] = counts[i]
	}
	return rep, err
}

func (s *SeedService) seedCollection(ctx context.Context, set seedSet) (int, error) {
	n, err := s.store.Count(ctx, set.collection, nil)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Debug().Str("collection", set.collection).Int64("count", n).Msg("collection not empty, seed skipped")
		return 0, nil
	}
	inserted := 0
	for _, d := range set.docs {
		if _, err := s.store.Create(ctx, set.collection, d); err != nil {
			observability.ObserveSeed(set.collection, inserted)
			return inserted, fmt.Errorf("seed %s: %w", set.collection, err)
		}
		inserted++
	}
	observability.ObserveSeed(set.collection, inserted)
	log.Info().Str("collection", set.collection).Int("inserted", inserted).Msg("seeded sample documents")
	return inserted, nil
}
