package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new instance of activityRepository
func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// FetchActivities implements domain.ActivityRepository. roomID 0 fetches
// activities for every room. Only activities overlapping [start, end) are
// returned.
func (r *activityRepository) FetchActivities(roomID int, start, end time.Time) ([]domain.Activity, error) {
	query := `
		SELECT
			activity_id,
			room_id,
			kind,
			COALESCE(label, ''),
			start_at,
			end_at
		FROM
			room_activity
		WHERE
			start_at < $2
			AND end_at > $1
			AND ($3 = 0 OR room_id = $3)
		ORDER BY
			room_id, start_at;`

	rows, err := r.db.Query(query, start, end, roomID)
	if err != nil {
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		err := rows.Scan(
			&a.ID,
			&a.RoomID,
			&a.Kind,
			&a.Label,
			&a.Start,
			&a.End,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}
