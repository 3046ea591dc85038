package matching

import "paw-connects/internal/domain/dogs"

// EvaluateLike decide si un like produce match: hay match si y solo si los
// conjuntos de actividades se intersectan. Es total y pura; "sin match" no es error.
func EvaluateLike(myDog, candidate dogs.Dog) (Match, bool) {
	shared := myDog.Activities.Intersect(candidate.Activities)
	if len(shared) == 0 {
		return Match{}, false
	}
	return Match{
		MyDog:    myDog.Clone(),
		OtherDog: candidate.Clone(),
		Shared:   shared,
	}, true
}
