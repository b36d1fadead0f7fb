package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"iil_api/internal/domain"
)

const DefaultTestimonialLimit = 10

type QueryService struct {
	store domain.DocumentStore
}

func NewQueryService(s domain.DocumentStore) *QueryService {
	return &QueryService{store: s}
}

func (s *QueryService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	docs, err := s.store.Query(ctx, domain.Collection(domain.KindCourse), nil, 0)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, domain.KindCourse, domain.ValidateCourse), nil
}

func (s *QueryService) GetCourse(ctx context.Context, slug string) (domain.Course, error) {
	doc, err := s.store.FindOne(ctx, domain.Collection(domain.KindCourse), domain.Filter{"slug": slug})
	if err != nil {
		return domain.Course{}, err
	}
	c, err := domain.ValidateCourse(doc, domain.Lenient)
	if err != nil {
		return domain.Course{}, storedInvalid(err)
	}
	return c, nil
}

// ListTestimonials returns at most limit testimonials; limit 0 means no limit.
// Callers without a client-supplied limit pass DefaultTestimonialLimit.
func (s *QueryService) ListTestimonials(ctx context.Context, limit int64) ([]domain.Testimonial, error) {
	docs, err := s.store.Query(ctx, domain.Collection(domain.KindTestimonial), nil, limit)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, domain.KindTestimonial, domain.ValidateTestimonial), nil
}

// ListBlogPosts returns every post, or at most limit when limit > 0.
func (s *QueryService) ListBlogPosts(ctx context.Context, limit int64) ([]domain.BlogPost, error) {
	docs, err := s.store.Query(ctx, domain.Collection(domain.KindBlogPost), nil, limit)
	if err != nil {
		return nil, err
	}
	return decodeAll(docs, domain.KindBlogPost, domain.ValidateBlogPost), nil
}

func (s *QueryService) GetBlogPost(ctx context.Context, slug string) (domain.BlogPost, error) {
	doc, err := s.store.FindOne(ctx, domain.Collection(domain.KindBlogPost), domain.Filter{"slug": slug})
	if err != nil {
		return domain.BlogPost{}, err
	}
	b, err := domain.ValidateBlogPost(doc, domain.Lenient)
	if err != nil {
		return domain.BlogPost{}, storedInvalid(err)
	}
	return b, nil
}

// GetInstituteInfo returns the first stored document, or the defaults when
// none has been written yet.
func (s *QueryService) GetInstituteInfo(ctx context.Context) (domain.InstituteInfo, error) {
	docs, err := s.store.Query(ctx, domain.Collection(domain.KindInstituteInfo), nil, 1)
	if err != nil {
		return domain.InstituteInfo{}, err
	}
	if len(docs) == 0 {
		return domain.DefaultInstituteInfo(), nil
	}
	info, err := domain.ValidateInstituteInfo(docs[0], domain.Lenient)
	if err != nil {
		return domain.InstituteInfo{}, storedInvalid(err)
	}
	return info, nil
}

// storedInvalid hides the ValidationError type so a bad stored row is a
// server fault rather than a client one.
func storedInvalid(err error) error {
	return fmt.Errorf("stored document does not match schema: %s", err.Error())
}

// decodeAll maps stored documents onto typed records. Rows that no longer
// satisfy the schema are logged and left out.
func decodeAll[T any](docs []domain.Document, kind domain.Kind, validate func(map[string]any, domain.Policy) (T, error)) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		rec, err := validate(d, domain.Lenient)
		if err != nil {
			log.Warn().Err(err).Str("kind", string(kind)).Interface("id", d["_id"]).Msg("skipping invalid stored document")
			continue
		}
		out = append(out, rec)
	}
	return out
}
