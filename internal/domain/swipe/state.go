package swipe

import (
	"errors"
	"fmt"
	"slices"

	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/domain/matching"
)

var (
	ErrUnknownDog = errors.New("unknown owned dog")
	ErrEmptyDeck  = errors.New("no owned dogs")
)

// Deck es el snapshot inmutable de perfiles: perros propios + candidatos en orden.
type Deck struct {
	Owned      []dogs.Dog
	Candidates []dogs.Dog
}

func NewDeck(owned, candidates []dogs.Dog) (Deck, error) {
	if len(owned) == 0 {
		return Deck{}, ErrEmptyDeck
	}
	return Deck{
		Owned:      slices.Clone(owned),
		Candidates: slices.Clone(candidates),
	}, nil
}

func (d Deck) owned(id int) (dogs.Dog, bool) {
	for _, o := range d.Owned {
		if o.ID == id {
			return o, true
		}
	}
	return dogs.Dog{}, false
}

// State es el estado explícito de la sesión. Los comandos reciben un State y
// devuelven uno nuevo; nunca mutan el recibido.
type State struct {
	ActiveDogID int
	Cursor      int
	Matches     []matching.Match
}

// NewState arranca con el primer perro propio activo y el cursor en 0.
func NewState(deck Deck) State {
	s := State{Matches: []matching.Match{}}
	if len(deck.Owned) > 0 {
		s.ActiveDogID = deck.Owned[0].ID
	}
	return s
}

// Stamp completa ID y fecha de un match al registrarlo.
type Stamp func(m matching.Match) matching.Match

// Result describe qué pasó con una acción sobre el mazo.
type Result struct {
	Gesture   Gesture
	Candidate *dogs.Dog       // candidato sobre el que se actuó (nil si no hubo)
	Match     *matching.Match // nil si no hubo match
	Exhausted bool            // no quedaban candidatos: la acción fue no-op
}

// Current devuelve el candidato bajo el cursor; false = estado vacío ("no more profiles").
func Current(deck Deck, s State) (dogs.Dog, bool) {
	if s.Cursor < 0 || s.Cursor >= len(deck.Candidates) {
		return dogs.Dog{}, false
	}
	return deck.Candidates[s.Cursor], true
}

func ActiveDog(deck Deck, s State) (dogs.Dog, error) {
	d, ok := deck.owned(s.ActiveDogID)
	if !ok {
		return dogs.Dog{}, fmt.Errorf("%w: %d", ErrUnknownDog, s.ActiveDogID)
	}
	return d, nil
}

// Like evalúa el match con el perro activo, lo agrega si hay y avanza el cursor
// en cualquier caso.
func Like(deck Deck, s State, stamp Stamp) (State, Result, error) {
	cand, ok := Current(deck, s)
	if !ok {
		return s, Result{Gesture: GestureSwipeRight, Exhausted: true}, nil
	}
	mine, err := ActiveDog(deck, s)
	if err != nil {
		return s, Result{}, err
	}

	next := advance(s)
	res := Result{Gesture: GestureSwipeRight, Candidate: &cand}

	if m, ok := matching.EvaluateLike(mine, cand); ok {
		if stamp != nil {
			m = stamp(m)
		}
		next.Matches = append(slices.Clone(s.Matches), m)
		res.Match = &m
	}
	return next, res, nil
}

// Skip avanza el cursor sin evaluar match.
func Skip(deck Deck, s State) (State, Result) {
	cand, ok := Current(deck, s)
	if !ok {
		return s, Result{Gesture: GestureSwipeLeft, Exhausted: true}
	}
	return advance(s), Result{Gesture: GestureSwipeLeft, Candidate: &cand}
}

// Drag resuelve el gesto soltado y aplica like, skip o nada.
func Drag(deck Deck, s State, offsetX, threshold float64, stamp Stamp) (State, Result, error) {
	switch ResolveDrag(offsetX, threshold) {
	case GestureSwipeRight:
		return Like(deck, s, stamp)
	case GestureSwipeLeft:
		next, res := Skip(deck, s)
		return next, res, nil
	default:
		res := Result{Gesture: GestureSnapBack}
		if cand, ok := Current(deck, s); ok {
			res.Candidate = &cand
		} else {
			res.Exhausted = true
		}
		return s, res, nil
	}
}

// SetActiveDog cambia el perro que hace swipe (pantalla de perfil).
func SetActiveDog(deck Deck, s State, id int) (State, error) {
	if _, ok := deck.owned(id); !ok {
		return s, fmt.Errorf("%w: %d", ErrUnknownDog, id)
	}
	next := s
	next.ActiveDogID = id
	return next, nil
}

func advance(s State) State {
	next := s
	next.Cursor = s.Cursor + 1
	return next
}
