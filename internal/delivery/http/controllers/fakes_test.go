package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"clubsessions/internal/delivery/http/helpers"
	"clubsessions/internal/domain"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSessionService records the last arguments and returns canned results.
type fakeSessionService struct {
	created    *domain.Session
	createErr  error
	lastDraft  *domain.SessionDraft
	list       []*domain.Session
	total      int
	browseErr  error
	lastFilter domain.Filters
	lastPage   domain.PaginationParams
	byID       map[int]*domain.Session
	getErr     error
}

func (f *fakeSessionService) Create(ctx context.Context, draft *domain.SessionDraft) (*domain.Session, error) {
	f.lastDraft = draft
	return f.created, f.createErr
}

func (f *fakeSessionService) Browse(ctx context.Context, filters domain.Filters, page domain.PaginationParams) ([]*domain.Session, int, error) {
	f.lastFilter = filters
	f.lastPage = page
	return f.list, f.total, f.browseErr
}

func (f *fakeSessionService) Get(ctx context.Context, id int) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

// fakeBrowseService is a minimal BrowseService keeping state in fields.
type fakeBrowseService struct {
	filters    domain.Filters
	lastUpdate *domain.FilterUpdate
	changeErr  error
	visible    []*domain.Session
	visibleErr error
	sessions   map[int]*domain.Session
	selected   int
	selectErr  error
}

func newFakeBrowseService() *fakeBrowseService {
	return &fakeBrowseService{filters: domain.DefaultFilters(), sessions: map[int]*domain.Session{}}
}

func (f *fakeBrowseService) Filters() domain.Filters { return f.filters }

func (f *fakeBrowseService) ChangeFilters(update domain.FilterUpdate) (domain.Filters, error) {
	f.lastUpdate = &update
	if f.changeErr != nil {
		return f.filters, f.changeErr
	}
	f.filters = f.filters.Merge(update)
	return f.filters, nil
}

func (f *fakeBrowseService) ResetFilters() domain.Filters {
	f.filters = domain.DefaultFilters()
	return f.filters
}

func (f *fakeBrowseService) Visible(ctx context.Context) ([]*domain.Session, error) {
	return f.visible, f.visibleErr
}

func (f *fakeBrowseService) Select(ctx context.Context, id int) (*domain.Session, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f.selected = id
	return s, nil
}

func (f *fakeBrowseService) Selected(ctx context.Context) (*domain.Session, error) {
	if f.selected == 0 {
		return nil, domain.ErrNoSelection
	}
	return f.sessions[f.selected], nil
}

func (f *fakeBrowseService) ClearSelection() { f.selected = 0 }

// fakeClubRepo serves fixed clubs.
type fakeClubRepo struct {
	clubs []domain.Club
	err   error
}

func (f *fakeClubRepo) List(ctx context.Context) ([]domain.Club, error) { return f.clubs, f.err }

func (f *fakeClubRepo) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	for _, c := range f.clubs {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// envelope mirrors helpers.APIResponse with a typed data field.
type envelope[T any] struct {
	Data  T                       `json:"data"`
	Meta  *helpers.PaginationMeta `json:"meta"`
	Error *helpers.APIError       `json:"error"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func testSession(id int) *domain.Session {
	return &domain.Session{
		ID:           id,
		Name:         "Open Play",
		Club:         domain.Club{ID: 1, Name: "Downtown Dinkers"},
		Date:         "2024-08-15",
		Time:         "09:00",
		Duration:     120,
		Location:     "Downtown Courts",
		Participants: domain.Participants{Current: 3, Max: 8},
		Type:         domain.SessionTypeSocial,
		SkillLevel:   domain.SkillLevelAll,
		Host:         "Jo",
		Privacy:      domain.PrivacyPublic,
	}
}
