package model

import "time"

// ActivityType names an event recorded in the activity log.
type ActivityType string

const (
	ActivityPasswordGenerated ActivityType = "password_generated"
	ActivityPasswordAnalyzed  ActivityType = "password_analyzed"
	ActivityBreachCheck       ActivityType = "breach_check"
	ActivityEntryAdded        ActivityType = "entry_added"
	ActivityEntryRemoved      ActivityType = "entry_removed"
	ActivitySessionOpened     ActivityType = "session_opened"
)

// Severity ranks how much attention an activity deserves.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Activity is a single activity log record. It never holds secrets.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Severity    Severity     `json:"severity"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ActivityStats counts activities per type.
type ActivityStats struct {
	Total  int                  `json:"total"`
	ByType map[ActivityType]int `json:"by_type"`
}

// AchievementCategory groups achievements.
type AchievementCategory string

const (
	AchievementSecurity AchievementCategory = "security"
	AchievementActivity AchievementCategory = "activity"
	AchievementLearning AchievementCategory = "learning"
)

// Achievement is a milestone unlocked by recorded activity.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
	Points      int                 `json:"points"`
	Progress    int                 `json:"progress"`
	Target      int                 `json:"target"`
	Earned      bool                `json:"earned"`
}

// AchievementSummary lists every achievement with totals over the earned ones.
type AchievementSummary struct {
	Earned         int           `json:"earned"`
	Total          int           `json:"total"`
	Points         int           `json:"points"`
	CompletionRate float64       `json:"completion_rate"`
	Achievements   []Achievement `json:"achievements"`
}
