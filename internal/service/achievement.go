package service

import (
	"context"
	"math"

	"github.com/fortipass/fortipass-go/internal/model"
)

type achievementRule struct {
	id          string
	title       string
	description string
	category    model.AchievementCategory
	points      int
	activity    model.ActivityType
	target      int
}

var achievementRules = []achievementRule{
	{"first-password", "First Password", "Generate your first password",
		model.AchievementActivity, 50, model.ActivityPasswordGenerated, 1},
	{"password-factory", "Password Factory", "Generate 25 passwords",
		model.AchievementActivity, 100, model.ActivityPasswordGenerated, 25},
	{"vault-opened", "Vault Keeper", "Open an operator session",
		model.AchievementActivity, 25, model.ActivitySessionOpened, 1},
	{"strength-student", "Strength Student", "Analyze 10 passwords",
		model.AchievementLearning, 75, model.ActivityPasswordAnalyzed, 10},
	{"breach-aware", "Breach Aware", "Run your first breach check",
		model.AchievementLearning, 50, model.ActivityBreachCheck, 1},
	{"vault-builder", "Vault Builder", "Store 5 passwords in the vault",
		model.AchievementSecurity, 100, model.ActivityEntryAdded, 5},
	{"spring-cleaning", "Spring Cleaning", "Remove a stale vault entry",
		model.AchievementSecurity, 50, model.ActivityEntryRemoved, 1},
}

// Achievements evaluates every achievement against the activity counts.
func (s *ActivityService) Achievements(ctx context.Context) (model.AchievementSummary, error) {
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return model.AchievementSummary{}, err
	}

	summary := model.AchievementSummary{
		Total:        len(achievementRules),
		Achievements: make([]model.Achievement, 0, len(achievementRules)),
	}
	for _, rule := range achievementRules {
		a := model.Achievement{
			ID:          rule.id,
			Title:       rule.title,
			Description: rule.description,
			Category:    rule.category,
			Points:      rule.points,
			Progress:    min(counts[rule.activity], rule.target),
			Target:      rule.target,
		}
		a.Earned = a.Progress >= rule.target
		if a.Earned {
			summary.Earned++
			summary.Points += a.Points
		}
		summary.Achievements = append(summary.Achievements, a)
	}

	rate := float64(summary.Earned) / float64(summary.Total) * 100
	summary.CompletionRate = math.Round(rate*10) / 10
	return summary, nil
}
