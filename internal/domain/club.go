package domain

import "context"

// Club is an organizing entity that hosts sessions. Clubs are reference data:
// they are created at startup and never change afterwards.
// swagger:model Club
type Club struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// ClubRepository gives read access to the fixed set of reference clubs.
type ClubRepository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, id int) (*Club, error)
}

// ClubAssigner decides which club a newly created session belongs to.
type ClubAssigner interface {
	Assign(ctx context.Context, draft *SessionDraft) (*Club, error)
}
