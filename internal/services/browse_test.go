package services

import (
	"context"
	"testing"

	"clubsessions/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBrowseService_ChangeFilters(t *testing.T) {
	svc := NewBrowseService(newFakeSessionRepo(), testTimeout)
	assert.Equal(t, domain.DefaultFilters(), svc.Filters())

	got, err := svc.ChangeFilters(domain.FilterUpdate{Location: ptr("court"), Time: ptr(domain.TimeMorning)})
	require.NoError(t, err)
	assert.Equal(t, "court", got.Location)
	assert.Equal(t, domain.TimeMorning, got.Time)

	got, err = svc.ChangeFilters(domain.FilterUpdate{SkillLevel: ptr(domain.SkillLevelAdvanced)})
	require.NoError(t, err)
	assert.Equal(t, "court", got.Location, "unspecified fields are retained")
	assert.Equal(t, domain.TimeMorning, got.Time)
	assert.Equal(t, domain.SkillLevelAdvanced, got.SkillLevel)

	_, err = svc.ChangeFilters(domain.FilterUpdate{Location: ptr("harbor"), SessionType: ptr(domain.SessionType("Tournament"))})
	require.ErrorIs(t, err, domain.ErrInvalidFilter)
	assert.Equal(t, got, svc.Filters(), "rejected update leaves filters unchanged")

	assert.Equal(t, domain.DefaultFilters(), svc.ResetFilters())
	assert.Equal(t, domain.DefaultFilters(), svc.Filters())
}

func TestBrowseService_Visible(t *testing.T) {
	repo := newFakeSessionRepo(
		&domain.Session{ID: 1, Date: "2024-06-01", Time: "09:00", Location: "Court A", Type: domain.SessionTypeSocial, SkillLevel: domain.SkillLevelBeginner},
		&domain.Session{ID: 2, Date: "2024-06-01", Time: "19:00", Location: "Court B", Type: domain.SessionTypeTraining, SkillLevel: domain.SkillLevelAdvanced},
	)
	svc := NewBrowseService(repo, testTimeout)

	visibleIDs := func() []int {
		got, err := svc.Visible(context.Background())
		require.NoError(t, err)
		out := []int{}
		for _, s := range got {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 2}, visibleIDs())

	_, err := svc.ChangeFilters(domain.FilterUpdate{Time: ptr(domain.TimeMorning)})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, visibleIDs())

	svc.ResetFilters()
	_, err = svc.ChangeFilters(domain.FilterUpdate{SessionType: ptr(domain.SessionTypeTraining)})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, visibleIDs())

	svc.ResetFilters()
	_, err = svc.ChangeFilters(domain.FilterUpdate{Location: ptr("court")})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, visibleIDs())

	// new sessions show up without any filter change
	_, err = repo.Create(context.Background(), &domain.SessionDraft{
		Name: "Late", Date: "2024-05-31", Time: "20:00", Location: "Court C", MaxParticipants: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, visibleIDs())
}

func TestBrowseService_Selection(t *testing.T) {
	repo := newFakeSessionRepo(sampleSession(4, "2024-08-15", "09:00", domain.SessionTypeSocial))
	svc := NewBrowseService(repo, testTimeout)
	ctx := context.Background()

	_, err := svc.Selected(ctx)
	require.ErrorIs(t, err, domain.ErrNoSelection)

	_, err = svc.Select(ctx, 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Selected(ctx)
	require.ErrorIs(t, err, domain.ErrNoSelection, "failed select keeps previous selection")

	got, err := svc.Select(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ID)

	selected, err := svc.Selected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, selected.ID)

	svc.ClearSelection()
	_, err = svc.Selected(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSelection)
}
