package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/fortipass/fortipass-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_RecordAndRecent(t *testing.T) {
	svc := NewActivityService(repository.NewMemoryActivityRepository(100))
	base := time.Date(2024, 1, 21, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	ctx := context.Background()

	svc.Record(ctx, model.ActivityPasswordGenerated, model.SeverityLow, "first")
	svc.Record(ctx, model.ActivityBreachCheck, model.SeverityHigh, "second")
	svc.Record(ctx, model.ActivityPasswordGenerated, model.SeverityLow, "third")

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "third", recent[0].Description)
	assert.Equal(t, "first", recent[2].Description)
	assert.NotEmpty(t, recent[0].ID)
	assert.Equal(t, base.Add(3*time.Second), recent[0].CreatedAt)

	recent, err = svc.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByType[model.ActivityPasswordGenerated])
	assert.Equal(t, 1, stats.ByType[model.ActivityBreachCheck])
}

type limitSpy struct {
	ActivityRepository
	gotLimit int
}

func (s *limitSpy) Recent(_ context.Context, limit int) ([]model.Activity, error) {
	s.gotLimit = limit
	return nil, nil
}

func TestActivityService_RecentLimits(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, defaultActivityLimit},
		{-5, defaultActivityLimit},
		{50, 50},
		{10000, maxActivityLimit},
	}

	for _, tt := range tests {
		spy := &limitSpy{}
		svc := NewActivityService(spy)

		_, err := svc.Recent(context.Background(), tt.limit)
		require.NoError(t, err)
		assert.Equal(t, tt.want, spy.gotLimit, "limit %d", tt.limit)
	}
}

type failingActivityRepo struct{ ActivityRepository }

func (failingActivityRepo) Insert(context.Context, model.Activity) error {
	return errors.New("insert failed")
}

func TestActivityService_RecordSwallowsErrors(t *testing.T) {
	svc := NewActivityService(failingActivityRepo{})

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), model.ActivityEntryAdded, model.SeverityLow, "ignored")
	})
}
