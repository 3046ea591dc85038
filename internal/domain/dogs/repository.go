package dogs

import "context"

type Repository interface {
	// ListOwned devuelve los perros del usuario local (los que hacen swipe).
	ListOwned(ctx context.Context) ([]Dog, error)
	// ListCandidates devuelve el mazo de perfiles en orden de swipe.
	ListCandidates(ctx context.Context) ([]Dog, error)
	GetByID(ctx context.Context, id int) (Dog, error)
}
