package app

import (
	"context"
	"fmt"

	"iil_api/internal/domain"
)

const (
	statusRunning      = "✅ Running"
	statusConnected    = "✅ Connected"
	statusNotAvailable = "❌ Not Available"
	statusSet          = "✅ Set"
	statusNotSet       = "❌ Not Set"
)

// Status is the /test diagnostic body. Problems probing the store are
// reported in CollectionsError or Error, never returned.
type Status struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	Collections      []string `json:"collections"`
	CollectionsError string   `json:"collections_error,omitempty"`
	Error            string   `json:"error,omitempty"`
}

type StatusService struct {
	store  domain.DocumentStore
	urlSet bool
}

func NewStatusService(s domain.DocumentStore, databaseURLSet bool) *StatusService {
	return &StatusService{store: s, urlSet: databaseURLSet}
}

func (s *StatusService) Check(ctx context.Context) (st Status) {
	st = Status{
		Backend:      statusRunning,
		Database:     statusNotAvailable,
		DatabaseURL:  statusNotSet,
		DatabaseName: statusNotSet,
		Collections:  []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			st.Error = fmt.Sprint(r)
		}
	}()

	if s.store == nil || !s.store.Available() {
		return st
	}
	st.Database = statusConnected
	if s.urlSet {
		st.DatabaseURL = statusSet
	}
	st.DatabaseName = s.store.Name()
	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		st.CollectionsError = err.Error()
		return st
	}
	if names != nil {
		st.Collections = names
	}
	return st
}
