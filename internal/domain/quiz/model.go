package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSelection  = errors.New("select an option first")
	ErrFinished     = errors.New("quiz already finished")
)

// Takeaway se muestra al terminar.
const Takeaway = "Takeaway: Buy early, know coverage, avoid exclusions."

type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: prompt required", ErrInvalidInput)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: at least two options required", ErrInvalidInput)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: correct index %d out of range", ErrInvalidInput, q.CorrectIndex)
	}
	return nil
}

// Score es correctas / total.
type Score struct {
	Correct int
	Total   int
}

func (s Score) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}
