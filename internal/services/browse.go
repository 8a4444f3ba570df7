package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clubsessions/internal/domain"
)

// browseService is the single owner of the browsing state: the current filters
// and the selected session. Intents are applied one at a time under mu.
type browseService struct {
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration

	mu         sync.Mutex
	filters    domain.Filters
	selectedID int
}

// NewBrowseService returns a BrowseService starting from domain.DefaultFilters
// with nothing selected.
func NewBrowseService(repo domain.SessionRepository, timeout time.Duration) domain.BrowseService {
	return &browseService{
		sessionRepo:    repo,
		contextTimeout: timeout,
		filters:        domain.DefaultFilters(),
	}
}

func (s *browseService) Filters() domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// ChangeFilters merges update into the current filters. Values outside their
// declared domain are rejected and leave the filters unchanged.
func (s *browseService) ChangeFilters(update domain.FilterUpdate) (domain.Filters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.filters.Merge(update)
	if err := merged.Validate(); err != nil {
		return s.filters, err
	}
	s.filters = merged
	return s.filters, nil
}

func (s *browseService) ResetFilters() domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.DefaultFilters()
	return s.filters
}

func (s *browseService) Visible(ctx context.Context) (_ []*domain.Session, err error) {
	ctx, span := tracer.Start(ctx, "BrowseService.Visible")
	defer func() { endSpan(span, err) }()
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filters := s.Filters()
	all, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return domain.ApplyFilters(all, filters), nil
}

func (s *browseService) Select(ctx context.Context, id int) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	s.mu.Lock()
	s.selectedID = session.ID
	s.mu.Unlock()
	return session, nil
}

func (s *browseService) Selected(ctx context.Context) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	id := s.selectedID
	s.mu.Unlock()
	if id == 0 {
		return nil, domain.ErrNoSelection
	}
	return s.sessionRepo.GetByID(ctx, id)
}

func (s *browseService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = 0
}
