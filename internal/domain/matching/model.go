package matching

import (
	"time"

	"paw-connects/internal/domain/dogs"
)

// Match empareja el perro propio (primero) con el candidato (segundo).
// ID y MatchedAt los asigna quien registra el match; EvaluateLike los deja vacíos.
type Match struct {
	ID string

	MyDog    dogs.Dog
	OtherDog dogs.Dog

	Shared dogs.Activities

	MatchedAt time.Time
}
