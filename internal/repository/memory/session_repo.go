package memory

import (
	"context"
	"fmt"
	"sync"

	"clubsessions/internal/domain"
)

// SessionRepository is an append-only, mutex-guarded list of sessions kept in
// insertion order.
type SessionRepository struct {
	mu       sync.Mutex
	sessions []*domain.Session

	ids   domain.IDGenerator
	clubs domain.ClubAssigner
}

var _ domain.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a repository holding copies of seed.
// New sessions get their id from ids and their club from clubs.
func NewSessionRepository(ids domain.IDGenerator, clubs domain.ClubAssigner, seed []*domain.Session) *SessionRepository {
	sessions := make([]*domain.Session, 0, len(seed))
	for _, s := range seed {
		sessions = append(sessions, clone(s))
	}
	return &SessionRepository{
		sessions: sessions,
		ids:      ids,
		clubs:    clubs,
	}
}

// Create builds a session from the draft and appends it.
func (r *SessionRepository) Create(ctx context.Context, draft *domain.SessionDraft) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	club, err := r.clubs.Assign(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("assign club: %w", err)
	}
	s, err := domain.NewSession(0, *club, draft)
	if err != nil {
		return nil, err
	}
	// Rejected drafts must not consume an id.
	s.ID = r.ids.NextID()
	r.sessions = append(r.sessions, s)
	return clone(s), nil
}

// List returns copies of all sessions in insertion order.
func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Session, len(r.sessions))
	for i, s := range r.sessions {
		out[i] = clone(s)
	}
	return out, nil
}

// GetByID returns a copy of the session with the given id or domain.ErrNotFound.
func (r *SessionRepository) GetByID(ctx context.Context, id int) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sessions {
		if s.ID == id {
			return clone(s), nil
		}
	}
	return nil, domain.ErrNotFound
}

// MaxID returns the highest id among sessions, or 0 when there are none.
func MaxID(sessions []*domain.Session) int {
	highest := 0
	for _, s := range sessions {
		highest = max(highest, s.ID)
	}
	return highest
}

func clone(s *domain.Session) *domain.Session {
	c := *s
	return &c
}
