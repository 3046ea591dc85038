package dogs

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListOwned(ctx context.Context) ([]Dog, error) {
	return s.repo.ListOwned(ctx)
}

func (s *Service) ListCandidates(ctx context.Context) ([]Dog, error) {
	return s.repo.ListCandidates(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Dog, error) {
	if id <= 0 {
		return Dog{}, ErrInvalidInput
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, fmt.Errorf("get dog %d: %w", id, ErrNotFound)
	}
	return d, nil
}

// Deck arma el snapshot que consume la sesión de swipe.
func (s *Service) Deck(ctx context.Context) (owned, candidates []Dog, err error) {
	owned, err = s.repo.ListOwned(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(owned) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one owned dog required", ErrInvalidInput)
	}
	candidates, err = s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, nil, err
	}
	return owned, candidates, nil
}
