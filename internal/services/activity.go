package services

import (
	"context"
	"database/sql"
	"time"
)

// ActivityService records usage events in PostgreSQL and aggregates them for
// the admin dashboard. Best-effort: the journaling flows never fail because an
// event could not be recorded.
type ActivityService struct {
	db *sql.DB
}

func NewActivityService(db *sql.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Enabled reports whether analytics is wired up (PostgreSQL configured).
func (s *ActivityService) Enabled() bool {
	return s != nil && s.db != nil
}

// Record inserts one event. userID may be empty for anonymous traffic.
func (s *ActivityService) Record(ctx context.Context, userID, eventType, path string) error {
	if !s.Enabled() {
		return nil
	}
	var uid interface{}
	if userID != "" {
		uid = userID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_events (user_id, event_type, path, created_at)
		VALUES ($1, $2, $3, NOW())
	`, uid, eventType, path)
	return err
}

// DayCount is one day's worth of an aggregate.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityReport is the admin-facing aggregate over a date range.
type ActivityReport struct {
	EventsPerDay      []DayCount `json:"eventsPerDay"`
	ActiveUsersPerDay []DayCount `json:"activeUsersPerDay"`
}

// Report aggregates events per day and distinct active users per day over
// [from, to] (whole days, to inclusive).
func (s *ActivityService) Report(ctx context.Context, from, to time.Time) (ActivityReport, error) {
	report := ActivityReport{
		EventsPerDay:      []DayCount{},
		ActiveUsersPerDay: []DayCount{},
	}
	if !s.Enabled() {
		return report, nil
	}

	toEnd := to.AddDate(0, 0, 1)

	rows, err := s.db.QueryContext(ctx, `
		SELECT (created_at)::date AS d, COUNT(*)
		FROM activity_events
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY (created_at)::date
		ORDER BY d
	`, from, toEnd)
	if err != nil {
		return report, err
	}
	if err := scanDayCounts(rows, &report.EventsPerDay); err != nil {
		return report, err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT (created_at)::date AS d, COUNT(DISTINCT user_id)
		FROM activity_events
		WHERE user_id IS NOT NULL AND created_at >= $1 AND created_at < $2
		GROUP BY (created_at)::date
		ORDER BY d
	`, from, toEnd)
	if err != nil {
		return report, err
	}
	if err := scanDayCounts(rows, &report.ActiveUsersPerDay); err != nil {
		return report, err
	}
	return report, nil
}

func scanDayCounts(rows *sql.Rows, dest *[]DayCount) error {
	defer rows.Close()
	for rows.Next() {
		var d time.Time
		var c int
		if err := rows.Scan(&d, &c); err != nil {
			return err
		}
		*dest = append(*dest, DayCount{Date: d.Format("2006-01-02"), Count: c})
	}
	return rows.Err()
}
