package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"clubsessions/internal/domain"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	announcer      domain.AnnouncementService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSessionService returns a SessionService backed by repo. announcer may be nil,
// in which case new sessions are not announced.
func NewSessionService(repo domain.SessionRepository, announcer domain.AnnouncementService, logger *slog.Logger, timeout time.Duration) domain.SessionService {
	return &sessionService{
		sessionRepo:    repo,
		announcer:      announcer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *sessionService) Create(ctx context.Context, draft *domain.SessionDraft) (_ *domain.Session, err error) {
	ctx, span := tracer.Start(ctx, "SessionService.Create")
	defer func() { endSpan(span, err) }()
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if draft == nil {
		return nil, fmt.Errorf("%w: draft is nil", domain.ErrInvalidDraft)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	span.SetAttributes(attribute.Int("session.id", session.ID), attribute.Int("club.id", session.Club.ID))
	s.logger.InfoContext(ctx, "session created", "session_id", session.ID, "club_id", session.Club.ID)

	if s.announcer != nil {
		// The session exists either way; a failed announcement is only logged.
		if err := s.announcer.AnnounceSession(ctx, session); err != nil {
			s.logger.WarnContext(ctx, "announce session failed", "session_id", session.ID, "err", err)
		}
	}
	return session, nil
}

func (s *sessionService) Browse(ctx context.Context, filters domain.Filters, page domain.PaginationParams) (_ []*domain.Session, _ int, err error) {
	ctx, span := tracer.Start(ctx, "SessionService.Browse", trace.WithAttributes(
		attribute.String("filter.time", string(filters.Time)),
		attribute.String("filter.session_type", string(filters.SessionType)),
		attribute.String("filter.skill_level", string(filters.SkillLevel)),
	))
	defer func() { endSpan(span, err) }()
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := filters.Validate(); err != nil {
		return nil, 0, err
	}
	all, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	visible := domain.ApplyFilters(all, filters)
	span.SetAttributes(attribute.Int("sessions.matched", len(visible)))
	start, end := page.Window(len(visible))
	return visible[start:end], len(visible), nil
}

func (s *sessionService) Get(ctx context.Context, id int) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}
