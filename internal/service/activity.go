package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/google/uuid"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 200
)

// ActivityRepository persists activity records.
type ActivityRepository interface {
	Insert(ctx context.Context, a model.Activity) error
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
	CountByType(ctx context.Context) (map[model.ActivityType]int, error)
}

// ActivityRecorder receives activity events from the other services.
type ActivityRecorder interface {
	Record(ctx context.Context, typ model.ActivityType, severity model.Severity, description string)
}

// ActivityService records and reports the activity log.
type ActivityService struct {
	repo ActivityRepository
	now  func() time.Time
}

// NewActivityService creates a new ActivityService.
func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo, now: time.Now}
}

// Record stores an activity. Failures are logged and otherwise ignored so
// that the activity log never blocks the operation being recorded.
func (s *ActivityService) Record(ctx context.Context, typ model.ActivityType, severity model.Severity, description string) {
	a := model.Activity{
		ID:          uuid.NewString(),
		Type:        typ,
		Description: description,
		Severity:    severity,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		slog.Warn("failed to record activity", "type", typ, "error", err)
	}
}

// Recent returns the latest activities, newest first. Non-positive limits
// use the default and large limits are capped.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	limit = min(limit, maxActivityLimit)

	return s.repo.Recent(ctx, limit)
}

// Stats counts activities per type.
func (s *ActivityService) Stats(ctx context.Context) (model.ActivityStats, error) {
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return model.ActivityStats{}, err
	}

	stats := model.ActivityStats{ByType: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, model.ActivityType, model.Severity, string) {}

func recorderOrNoop(r ActivityRecorder) ActivityRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
