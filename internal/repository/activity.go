package repository

import (
	"context"
	"database/sql"
	"sync"

	"github.com/fortipass/fortipass-go/internal/model"
)

// MySQLActivityRepository persists the activity log in MySQL.
type MySQLActivityRepository struct {
	db *sql.DB
}

// NewMySQLActivityRepository creates a new MySQLActivityRepository.
func NewMySQLActivityRepository(db *sql.DB) *MySQLActivityRepository {
	return &MySQLActivityRepository{db: db}
}

// Insert appends an activity record.
func (r *MySQLActivityRepository) Insert(ctx context.Context, a model.Activity) error {
	query := `INSERT INTO activities (id, type, description, severity, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, a.ID, a.Type, a.Description, a.Severity, a.CreatedAt)
	return err
}

// Recent returns up to limit activities, newest first.
func (r *MySQLActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	query := `SELECT id, type, description, severity, created_at
		FROM activities ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.Severity, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// CountByType returns the number of activities recorded per type.
func (r *MySQLActivityRepository) CountByType(ctx context.Context) (map[model.ActivityType]int, error) {
	query := `SELECT type, COUNT(*) FROM activities GROUP BY type`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.ActivityType]int)
	for rows.Next() {
		var (
			t model.ActivityType
			n int
		)
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}

	return counts, rows.Err()
}

// MemoryActivityRepository keeps the most recent activities in memory.
// It is used when no database is reachable.
type MemoryActivityRepository struct {
	mu       sync.Mutex
	capacity int
	items    []model.Activity
	counts   map[model.ActivityType]int
}

// NewMemoryActivityRepository keeps at most capacity records; counts cover
// every record ever inserted.
func NewMemoryActivityRepository(capacity int) *MemoryActivityRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryActivityRepository{
		capacity: capacity,
		counts:   make(map[model.ActivityType]int),
	}
}

// Insert appends an activity record, evicting the oldest beyond capacity.
func (r *MemoryActivityRepository) Insert(ctx context.Context, a model.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, a)
	if len(r.items) > r.capacity {
		r.items = r.items[len(r.items)-r.capacity:]
	}
	r.counts[a.Type]++
	return nil
}

// Recent returns up to limit activities, newest first.
func (r *MemoryActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(limit, len(r.items))
	out := make([]model.Activity, 0, max(n, 0))
	for i := len(r.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

// CountByType returns the number of activities recorded per type.
func (r *MemoryActivityRepository) CountByType(ctx context.Context) (map[model.ActivityType]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[model.ActivityType]int, len(r.counts))
	for t, n := range r.counts {
		out[t] = n
	}
	return out, nil
}
