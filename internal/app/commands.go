package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"iil_api/internal/adapters/observability"
	"iil_api/internal/domain"
)

type EnquiryService struct {
	store domain.DocumentStore
}

func NewEnquiryService(s domain.DocumentStore) *EnquiryService {
	return &EnquiryService{store: s}
}

// Submit validates raw strictly and stores it as a new enquiry, returning the
// store-assigned id. Nothing is written when validation fails.
func (s *EnquiryService) Submit(ctx context.Context, raw map[string]any) (string, error) {
	e, err := domain.ValidateEnquiry(raw, domain.Strict)
	if err != nil {
		observability.ObserveEnquiry("invalid")
		return "", err
	}
	id, err := s.store.Create(ctx, domain.Collection(domain.KindEnquiry), e)
	if err != nil {
		observability.ObserveEnquiry("error")
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			log.Error().Err(err).Msg("store enquiry failed")
		}
		return "", err
	}
	observability.ObserveEnquiry("ok")
	log.Info().Str("id", id).Msg("enquiry received")
	return id, nil
}
