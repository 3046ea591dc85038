package mealplan

import (
	"context"
	"errors"
	"testing"

	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubActive struct {
	dog dogs.Dog
	err error
}

func (s stubActive) ActiveDog(context.Context) (dogs.Dog, error) { return s.dog, s.err }

func TestService_ForActiveDog(t *testing.T) {
	buddy := dogs.Dog{ID: 1, Name: "Buddy", WeightLb: 55, Activities: dogs.NewActivities(dogs.ActivityRunning)}
	svc := NewService(stubActive{dog: buddy}, nil)

	d, p, err := svc.ForActiveDog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Buddy", d.Name)
	assert.Equal(t, 1485, p.KcalPerDay)
}

func TestService_ForActiveDog_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := NewService(stubActive{err: boom}, nil).ForActiveDog(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_LogsRejection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(nil, logger.NewWithCore(core))

	_, err := svc.ForDog(context.Background(), dogs.Dog{ID: 9, WeightLb: 0})
	require.ErrorIs(t, err, ErrInvalidDogProfile)

	warns := logs.FilterMessage("meal plan rejected").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
	assert.Equal(t, "mealplan", warns[0].ContextMap()["module"])
}
