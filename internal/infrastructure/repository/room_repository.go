package repository

import (
	"database/sql"
	"fmt"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new instance of roomRepository
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// FetchRooms implements domain.RoomRepository
func (r *roomRepository) FetchRooms() ([]domain.Room, error) {
	query := `
		SELECT
			room_id,
			name,
			number,
			room_type,
			capacity,
			is_available,
			price_per_night,
			hourly_rate,
			day_use_price,
			default_checkin_hour,
			default_checkout_hour,
			early_checkin_hour_limit,
			late_checkout_hour_limit,
			in_maintenance,
			in_cleaning,
			out_of_order,
			COALESCE(notes, '')
		FROM
			room
		ORDER BY
			room_id;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		err := rows.Scan(
			&rm.ID,
			&rm.Name,
			&rm.Number,
			&rm.RoomType,
			&rm.Capacity,
			&rm.IsAvailable,
			&rm.PricePerNight,
			&rm.HourlyRate,
			&rm.DayUsePrice,
			&rm.DefaultCheckInHour,
			&rm.DefaultCheckOutHour,
			&rm.EarlyCheckInHourLimit,
			&rm.LateCheckOutHourLimit,
			&rm.InMaintenance,
			&rm.InCleaning,
			&rm.OutOfOrder,
			&rm.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, rm)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}
