package swipe

import (
	"context"
	"slices"
	"sync"
	"time"

	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/domain/matching"
	"paw-connects/internal/platform/logger"

	"github.com/google/uuid"
)

// Service guarda la única sesión local. Cada acción es una transición atómica
// bajo el mutex; si falla, el estado no cambia.
type Service struct {
	mu        sync.Mutex
	deck      Deck
	state     State
	threshold float64

	log   logger.Logger
	now   func() time.Time
	newID func() string
}

func NewService(deck Deck, threshold float64, log logger.Logger) *Service {
	if !(threshold > 0) {
		threshold = DefaultThreshold
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		deck:      deck,
		state:     NewState(deck),
		threshold: threshold,
		log:       log.With(map[string]any{"module": "swipe"}),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *Service) stamp(m matching.Match) matching.Match {
	m.ID = s.newID()
	m.MatchedAt = s.now()
	return m
}

// View es lo que muestra la pantalla de swipe.
type View struct {
	ActiveDog dogs.Dog
	Candidate *dogs.Dog // nil = no quedan perfiles
	Remaining int
}

func (s *Service) View(_ context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked()
}

func (s *Service) viewLocked() (View, error) {
	active, err := ActiveDog(s.deck, s.state)
	if err != nil {
		return View{}, err
	}
	v := View{ActiveDog: active}
	if c, ok := Current(s.deck, s.state); ok {
		v.Candidate = &c
		v.Remaining = len(s.deck.Candidates) - s.state.Cursor
	}
	return v, nil
}

func (s *Service) Like(_ context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, res, err := Like(s.deck, s.state, s.stamp)
	if err != nil {
		return Result{}, err
	}
	s.state = next
	s.logResult(res)
	return res, nil
}

func (s *Service) Skip(_ context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, res := Skip(s.deck, s.state)
	s.state = next
	s.logResult(res)
	return res, nil
}

func (s *Service) Drag(_ context.Context, offsetX float64) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, res, err := Drag(s.deck, s.state, offsetX, s.threshold, s.stamp)
	if err != nil {
		return Result{}, err
	}
	s.state = next
	s.logResult(res)
	return res, nil
}

// Matches devuelve una copia de la lista, en orden de creación.
func (s *Service) Matches(_ context.Context) []matching.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.state.Matches)
}

func (s *Service) OwnedDogs(_ context.Context) (activeID int, owned []dogs.Dog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.ActiveDogID, slices.Clone(s.deck.Owned)
}

func (s *Service) SetActiveDog(_ context.Context, id int) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := SetActiveDog(s.deck, s.state, id)
	if err != nil {
		return dogs.Dog{}, err
	}
	s.state = next
	s.log.Info("active dog changed", map[string]any{"dog_id": id})
	return ActiveDog(s.deck, s.state)
}

// ActiveDog implementa mealplan.ActiveDogProvider.
func (s *Service) ActiveDog(_ context.Context) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ActiveDog(s.deck, s.state)
}

func (s *Service) logResult(res Result) {
	fields := map[string]any{
		"gesture":   string(res.Gesture),
		"exhausted": res.Exhausted,
		"cursor":    s.state.Cursor,
	}
	if res.Candidate != nil {
		fields["candidate_id"] = res.Candidate.ID
	}
	if res.Match != nil {
		fields["match_id"] = res.Match.ID
		s.log.Info("match recorded", fields)
		return
	}
	s.log.Debug("swipe", fields)
}
