package quiz

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"paw-connects/internal/platform/logger"
)

type Service struct {
	mu        sync.Mutex
	questions []Question
	attempt   Attempt
	log       logger.Logger
}

func NewService(questions []Question, log logger.Logger) (*Service, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: quiz needs at least one question", ErrInvalidInput)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		questions: slices.Clone(questions),
		attempt:   NewAttempt(),
		log:       log.With(map[string]any{"module": "quiz"}),
	}, nil
}

// View es lo que muestra la pantalla "Learn".
type View struct {
	Number   int // 1-based
	Total    int
	Question Question
	Attempt  Attempt
	Score    Score
}

func (s *Service) View(_ context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked()
}

func (s *Service) viewLocked() View {
	idx := min(s.attempt.Index, len(s.questions)-1)
	return View{
		Number:   idx + 1,
		Total:    len(s.questions),
		Question: s.questions[idx],
		Attempt:  s.attempt,
		Score:    s.attempt.Score(s.questions),
	}
}

func (s *Service) Select(_ context.Context, option int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Select(s.questions, s.attempt, option)
	if err != nil {
		return View{}, err
	}
	s.attempt = next
	return s.viewLocked(), nil
}

func (s *Service) Next(_ context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Advance(s.questions, s.attempt)
	if err != nil {
		return View{}, err
	}
	s.attempt = next
	if next.Finished {
		score := next.Score(s.questions)
		s.log.Info("quiz finished", map[string]any{"score": score.String()})
	}
	return s.viewLocked(), nil
}

func (s *Service) Reset(_ context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempt = NewAttempt()
	return s.viewLocked()
}
