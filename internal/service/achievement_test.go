package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/fortipass/fortipass-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievements_None(t *testing.T) {
	svc := NewActivityService(repository.NewMemoryActivityRepository(10))

	summary, err := svc.Achievements(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(achievementRules), summary.Total)
	assert.Zero(t, summary.Earned)
	assert.Zero(t, summary.Points)
	assert.Zero(t, summary.CompletionRate)
	require.Len(t, summary.Achievements, len(achievementRules))
	for _, a := range summary.Achievements {
		assert.False(t, a.Earned, a.ID)
		assert.Zero(t, a.Progress, a.ID)
	}
}

func TestAchievements_Progress(t *testing.T) {
	// Capacity 1 keeps a single record; counts cover every insert.
	svc := NewActivityService(repository.NewMemoryActivityRepository(1))
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		svc.Record(ctx, model.ActivityPasswordGenerated, model.SeverityLow, "generated")
	}
	for i := 0; i < 3; i++ {
		svc.Record(ctx, model.ActivityPasswordAnalyzed, model.SeverityLow, "analyzed")
	}
	svc.Record(ctx, model.ActivityBreachCheck, model.SeverityHigh, "breach")

	summary, err := svc.Achievements(ctx)
	require.NoError(t, err)

	byID := make(map[string]model.Achievement, len(summary.Achievements))
	for _, a := range summary.Achievements {
		byID[a.ID] = a
	}

	assert.True(t, byID["first-password"].Earned)
	assert.True(t, byID["password-factory"].Earned)
	assert.Equal(t, 25, byID["password-factory"].Progress)
	assert.True(t, byID["breach-aware"].Earned)
	assert.False(t, byID["strength-student"].Earned)
	assert.Equal(t, 3, byID["strength-student"].Progress)
	assert.False(t, byID["vault-builder"].Earned)

	assert.Equal(t, 3, summary.Earned)
	assert.Equal(t, 50+100+50, summary.Points)
	// 3 of 7
	assert.Equal(t, 42.9, summary.CompletionRate)
}

type failingCountRepo struct{ ActivityRepository }

func (failingCountRepo) CountByType(context.Context) (map[model.ActivityType]int, error) {
	return nil, errors.New("count failed")
}

func TestAchievements_RepositoryError(t *testing.T) {
	svc := NewActivityService(failingCountRepo{})

	_, err := svc.Achievements(context.Background())
	assert.EqualError(t, err, "count failed")
}
