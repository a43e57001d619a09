package service

import (
	"context"

	"github.com/fortipass/fortipass-go/internal/breach"
	"github.com/fortipass/fortipass-go/internal/model"
)

// BreachChecker looks passwords up in a breach list.
type BreachChecker interface {
	Check(password string) breach.Result
	IsBreached(password string) bool
}

// BreachService checks candidate passwords against known breaches.
type BreachService struct {
	checker  BreachChecker
	activity ActivityRecorder
}

// NewBreachService creates a new BreachService. activity may be nil.
func NewBreachService(checker BreachChecker, activity ActivityRecorder) *BreachService {
	return &BreachService{checker: checker, activity: recorderOrNoop(activity)}
}

// Check reports whether the password was found in a breach.
func (s *BreachService) Check(ctx context.Context, req model.BreachCheckRequest) model.BreachCheckResponse {
	result := s.checker.Check(req.Password)

	if result.IsBreached {
		s.activity.Record(ctx, model.ActivityBreachCheck, model.SeverityHigh, "Breach check: password found in known breaches")
	} else {
		s.activity.Record(ctx, model.ActivityBreachCheck, model.SeverityLow, "Breach check: no match")
	}

	return result
}
