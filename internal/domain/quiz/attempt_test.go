package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []Question {
	return []Question{
		{Prompt: "When?", Options: []string{"late", "early", "never"}, CorrectIndex: 1, Explanation: "early is cheaper"},
		{Prompt: "Accident plan?", Options: []string{"vaccines", "injuries", "grooming"}, CorrectIndex: 1, Explanation: "injuries"},
		{Prompt: "Premium?", Options: []string{"breed/age/zip", "collar", "likes"}, CorrectIndex: 0, Explanation: "risk factors"},
	}
}

func TestAdvance_RequiresSelection(t *testing.T) {
	qs := testQuestions()
	a := NewAttempt()
	assert.False(t, a.CanAdvance())

	next, err := Advance(qs, a)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, a, next)
}

func TestAllCorrect_ScoresTotalOverTotal(t *testing.T) {
	qs := testQuestions()
	a := NewAttempt()

	for _, q := range qs {
		var err error
		a, err = Select(qs, a, q.CorrectIndex)
		require.NoError(t, err)
		a, err = Advance(qs, a)
		require.NoError(t, err)
	}

	assert.True(t, a.Finished)
	score := a.Score(qs)
	assert.Equal(t, Score{Correct: 3, Total: 3}, score)
	assert.Equal(t, 1.0, score.Ratio())
	assert.Equal(t, "3/3", score.String())
}

func TestScoringUsesSelectionAtAdvanceTime(t *testing.T) {
	qs := testQuestions()
	a := NewAttempt()

	a, err := Select(qs, a, 1) // correcta
	require.NoError(t, err)
	a, err = Select(qs, a, 2) // cambia a incorrecta antes de avanzar
	require.NoError(t, err)
	a, err = Advance(qs, a)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Correct)
	assert.Equal(t, 1, a.Index)
	assert.False(t, a.HasSelection())
}

func TestSelect_OutOfRange(t *testing.T) {
	qs := testQuestions()
	_, err := Select(qs, NewAttempt(), 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Select(qs, NewAttempt(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFinished_RejectsFurtherActions(t *testing.T) {
	qs := testQuestions()[:1]
	a, err := Select(qs, NewAttempt(), 0)
	require.NoError(t, err)
	a, err = Advance(qs, a)
	require.NoError(t, err)
	require.True(t, a.Finished)
	assert.Equal(t, Score{Correct: 0, Total: 1}, a.Score(qs))

	_, err = Select(qs, a, 0)
	assert.ErrorIs(t, err, ErrFinished)
	_, err = Advance(qs, a)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestQuestion_Validate(t *testing.T) {
	assert.NoError(t, testQuestions()[0].Validate())
	assert.ErrorIs(t, Question{Prompt: "x", Options: []string{"a"}}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Question{Prompt: "x", Options: []string{"a", "b"}, CorrectIndex: 2}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Question{Options: []string{"a", "b"}}.Validate(), ErrInvalidInput)
}
