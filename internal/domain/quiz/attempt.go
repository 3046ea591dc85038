package quiz

import "fmt"

const noSelection = -1

// Attempt es el estado del quiz; Select y Advance devuelven uno nuevo.
type Attempt struct {
	Index    int
	Selected int // -1 = nada seleccionado
	Correct  int
	Finished bool
}

func NewAttempt() Attempt {
	return Attempt{Selected: noSelection}
}

func (a Attempt) HasSelection() bool { return a.Selected != noSelection }

// CanAdvance: el botón "Next" solo se habilita con una opción elegida.
func (a Attempt) CanAdvance() bool { return !a.Finished && a.HasSelection() }

func (a Attempt) Score(questions []Question) Score {
	return Score{Correct: a.Correct, Total: len(questions)}
}

func Select(questions []Question, a Attempt, option int) (Attempt, error) {
	if a.Finished {
		return a, ErrFinished
	}
	if a.Index < 0 || a.Index >= len(questions) {
		return a, fmt.Errorf("%w: no current question", ErrInvalidInput)
	}
	if option < 0 || option >= len(questions[a.Index].Options) {
		return a, fmt.Errorf("%w: option %d out of range", ErrInvalidInput, option)
	}
	next := a
	next.Selected = option
	return next, nil
}

// Advance puntúa la selección contra la respuesta correcta y pasa a la
// siguiente pregunta. En la última, termina el quiz.
func Advance(questions []Question, a Attempt) (Attempt, error) {
	if a.Finished {
		return a, ErrFinished
	}
	if !a.HasSelection() {
		return a, ErrNoSelection
	}
	if a.Index < 0 || a.Index >= len(questions) {
		return a, fmt.Errorf("%w: no current question", ErrInvalidInput)
	}

	next := a
	if a.Selected == questions[a.Index].CorrectIndex {
		next.Correct++
	}
	next.Selected = noSelection

	if a.Index == len(questions)-1 {
		next.Finished = true
		return next, nil
	}
	next.Index++
	return next, nil
}
