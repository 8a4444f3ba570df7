package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"clubsessions/internal/domain"
)

// Club assignment policy names accepted by NewClubAssigner.
const (
	ClubPolicyRandom    = "random"
	ClubPolicyFirst     = "first"
	ClubPolicyPreferred = "preferred"
)

// NewClubAssigner returns the assigner for the named policy. src seeds the
// random policy; nil uses the global generator. The preferred policy falls back
// to random selection when the draft names no club or an unknown one.
func NewClubAssigner(policy string, clubs domain.ClubRepository, src rand.Source) (domain.ClubAssigner, error) {
	switch policy {
	case ClubPolicyRandom, "":
		return NewRandomClubAssigner(clubs, src), nil
	case ClubPolicyFirst:
		return &firstClubAssigner{clubs: clubs}, nil
	case ClubPolicyPreferred:
		return &preferredClubAssigner{clubs: clubs, fallback: NewRandomClubAssigner(clubs, src)}, nil
	default:
		return nil, fmt.Errorf("unknown club assignment policy %q", policy)
	}
}

type randomClubAssigner struct {
	clubs domain.ClubRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomClubAssigner picks a club uniformly at random from clubs.
func NewRandomClubAssigner(clubs domain.ClubRepository, src rand.Source) domain.ClubAssigner {
	a := &randomClubAssigner{clubs: clubs}
	if src != nil {
		a.rnd = rand.New(src)
	}
	return a
}

func (a *randomClubAssigner) Assign(ctx context.Context, _ *domain.SessionDraft) (*domain.Club, error) {
	all, err := a.clubs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, domain.ErrNoClubs
	}
	return &all[a.intN(len(all))], nil
}

func (a *randomClubAssigner) intN(n int) int {
	if a.rnd == nil {
		return rand.IntN(n)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rnd.IntN(n)
}

type firstClubAssigner struct {
	clubs domain.ClubRepository
}

func (a *firstClubAssigner) Assign(ctx context.Context, _ *domain.SessionDraft) (*domain.Club, error) {
	all, err := a.clubs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, domain.ErrNoClubs
	}
	first := all[0]
	for _, c := range all[1:] {
		if c.ID < first.ID {
			first = c
		}
	}
	return &first, nil
}

type preferredClubAssigner struct {
	clubs    domain.ClubRepository
	fallback domain.ClubAssigner
}

func (a *preferredClubAssigner) Assign(ctx context.Context, draft *domain.SessionDraft) (*domain.Club, error) {
	if draft != nil && draft.ClubID != 0 {
		club, err := a.clubs.GetByID(ctx, draft.ClubID)
		if err == nil {
			return club, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return a.fallback.Assign(ctx, draft)
}
