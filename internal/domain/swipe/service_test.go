package swipe

import (
	"context"
	"fmt"
	"testing"
	"time"

	"paw-connects/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService(t *testing.T) (*Service, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(testDeck(t), 0, logger.NewWithCore(core))

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("match-%d", n)
	}
	return svc, logs
}

func TestService_DefaultThreshold(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, DefaultThreshold, svc.threshold)
}

func TestService_FullRun(t *testing.T) {
	ctx := context.Background()
	svc, logs := newTestService(t)

	v, err := svc.View(ctx)
	require.NoError(t, err)
	require.NotNil(t, v.Candidate)
	assert.Equal(t, 101, v.Candidate.ID)
	assert.Equal(t, 3, v.Remaining)

	res, err := svc.Like(ctx) // Bastian: match (RUNNING)
	require.NoError(t, err)
	require.NotNil(t, res.Match)
	assert.Equal(t, "match-1", res.Match.ID)

	_, err = svc.Like(ctx) // Chester: sin match
	require.NoError(t, err)

	res, err = svc.Drag(ctx, 500) // Bella: match
	require.NoError(t, err)
	require.NotNil(t, res.Match)
	assert.Equal(t, "match-2", res.Match.ID)

	v, err = svc.View(ctx)
	require.NoError(t, err)
	assert.Nil(t, v.Candidate)
	assert.Equal(t, 0, v.Remaining)

	matches := svc.Matches(ctx)
	require.Len(t, matches, 2)
	assert.Equal(t, 101, matches[0].OtherDog.ID)
	assert.Equal(t, 103, matches[1].OtherDog.ID)
	assert.Equal(t, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), matches[0].MatchedAt)

	assert.Equal(t, 2, logs.FilterMessage("match recorded").Len())
}

func TestService_MatchesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Like(ctx)
	require.NoError(t, err)

	got := svc.Matches(ctx)
	got[0].ID = "tampered"
	assert.Equal(t, "match-1", svc.Matches(ctx)[0].ID)
}

func TestService_SetActiveDog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	d, err := svc.SetActiveDog(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Luna", d.Name)

	active, err := svc.ActiveDog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, active.ID)

	_, err = svc.SetActiveDog(ctx, 999)
	assert.ErrorIs(t, err, ErrUnknownDog)

	activeID, owned := svc.OwnedDogs(ctx)
	assert.Equal(t, 2, activeID)
	assert.Len(t, owned, 2)
}
