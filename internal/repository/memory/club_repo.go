// Package memory implements in-memory repositories. Nothing stored here
// outlives the process.
package memory

import (
	"context"
	"slices"

	"clubsessions/internal/domain"
)

// ClubRepository serves the fixed set of reference clubs.
type ClubRepository struct {
	clubs []domain.Club
}

// NewClubRepository returns a repository over a copy of clubs, ordered by id.
func NewClubRepository(clubs []domain.Club) *ClubRepository {
	c := slices.Clone(clubs)
	slices.SortFunc(c, func(a, b domain.Club) int { return a.ID - b.ID })
	return &ClubRepository{clubs: c}
}

var _ domain.ClubRepository = (*ClubRepository)(nil)

// List returns every club ordered by id.
func (r *ClubRepository) List(ctx context.Context) ([]domain.Club, error) {
	return slices.Clone(r.clubs), nil
}

// GetByID returns the club with the given id or domain.ErrNotFound.
func (r *ClubRepository) GetByID(ctx context.Context, id int) (*domain.Club, error) {
	for _, c := range r.clubs {
		if c.ID == id {
			club := c
			return &club, nil
		}
	}
	return nil, domain.ErrNotFound
}
