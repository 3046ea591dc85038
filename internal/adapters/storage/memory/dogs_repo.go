package memory

import (
	"context"
	"errors"
	"sync"

	"paw-connects/internal/domain/dogs"
)

var (
	ErrNotFound = errors.New("not found")
)

type dogRepo struct {
	mu         sync.RWMutex
	byID       map[int]dogs.Dog
	owned      []int // orden de alta
	candidates []int // orden del mazo
}

// NewDogRepo arma el repo con los perros del seed. Falla si hay ids repetidos.
func NewDogRepo(owned, candidates []dogs.Dog) (dogs.Repository, error) {
	r := &dogRepo{
		byID: make(map[int]dogs.Dog, len(owned)+len(candidates)),
	}
	for _, d := range owned {
		if err := r.add(d); err != nil {
			return nil, err
		}
		r.owned = append(r.owned, d.ID)
	}
	for _, d := range candidates {
		if err := r.add(d); err != nil {
			return nil, err
		}
		r.candidates = append(r.candidates, d.ID)
	}
	return r, nil
}

func (r *dogRepo) add(d dogs.Dog) error {
	if d.ID <= 0 {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d.Clone()
	return nil
}

func (r *dogRepo) ListOwned(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.owned), nil
}

func (r *dogRepo) ListCandidates(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.candidates), nil
}

func (r *dogRepo) GetByID(ctx context.Context, id int) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, ErrNotFound
	}
	return d.Clone(), nil
}

func (r *dogRepo) collect(ids []int) []dogs.Dog {
	out := make([]dogs.Dog, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id].Clone())
	}
	return out
}
