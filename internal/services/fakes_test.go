package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"clubsessions/internal/domain"
)

const testTimeout = 5 * time.Second

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	sessions  []*domain.Session
	nextID    int
	club      domain.Club
	createErr error
	listErr   error
	lastDraft *domain.SessionDraft
}

func newFakeSessionRepo(seed ...*domain.Session) *fakeSessionRepo {
	next := 1
	for _, s := range seed {
		next = max(next, s.ID+1)
	}
	return &fakeSessionRepo{
		sessions: seed,
		nextID:   next,
		club:     domain.Club{ID: 1, Name: "Downtown Dinkers"},
	}
}

func (f *fakeSessionRepo) Create(ctx context.Context, draft *domain.SessionDraft) (*domain.Session, error) {
	f.lastDraft = draft
	if f.createErr != nil {
		return nil, f.createErr
	}
	s, err := domain.NewSession(f.nextID, f.club, draft)
	if err != nil {
		return nil, err
	}
	f.nextID++
	f.sessions = append(f.sessions, s)
	return s, nil
}

func (f *fakeSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Session, len(f.sessions))
	copy(out, f.sessions)
	return out, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int) (*domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeClubRepo is an in-memory ClubRepository for tests.
type fakeClubRepo struct {
	clubs []domain.Club
	err   error
}

func (f *fakeClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Club, len(f.clubs))
	copy(out, f.clubs)
	return out, nil
}

func (f *fakeClubRepo) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.clubs {
		if c.ID == id {
			club := c
			return &club, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeAnnouncer records announced sessions.
type fakeAnnouncer struct {
	announced []*domain.Session
	err       error
}

func (f *fakeAnnouncer) AnnounceSession(ctx context.Context, s *domain.Session) error {
	f.announced = append(f.announced, s)
	return f.err
}

// fakeMailer records sent messages and fails for addresses in failFor.
type fakeMailer struct {
	sent    []sentMail
	failFor map[string]bool
}

type sentMail struct {
	to, subject, html, text string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.failFor[to] {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html, text: text})
	return nil
}

// fakeRenderer returns fixed content and records the last template data.
type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.lastName = name
	f.lastData = data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func sampleSession(id int, date, clock string, typ domain.SessionType) *domain.Session {
	return &domain.Session{
		ID:           id,
		Name:         "Session",
		Date:         date,
		Time:         clock,
		Location:     "Downtown Courts",
		Type:         typ,
		SkillLevel:   domain.SkillLevelBeginner,
		Privacy:      domain.PrivacyPublic,
		Participants: domain.Participants{Current: 2, Max: 8},
	}
}

func validDraft() *domain.SessionDraft {
	return &domain.SessionDraft{
		Name:            "Morning Drills",
		Date:            "2024-08-20",
		Time:            "07:30",
		Duration:        60,
		Location:        "Riverside Park",
		Description:     "Third-shot drops and resets.",
		Price:           8,
		Type:            domain.SessionTypeTraining,
		SkillLevel:      domain.SkillLevelIntermediate,
		Host:            "Alex",
		Privacy:         domain.PrivacyPublic,
		MaxParticipants: 4,
	}
}
