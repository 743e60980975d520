package domain

// Room represents a hotel room together with its rates and default hours.
// Rooms are reference data inside a reception session: they come from the
// backend and are never mutated by the store.
type Room struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	RoomType    string `json:"roomType"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`

	// Rates for the three billing models
	PricePerNight float64 `json:"pricePerNight"`
	HourlyRate    float64 `json:"hourlyRate"`
	DayUsePrice   float64 `json:"dayUsePrice"`

	// Default hours, decimal format (14.5 = 14h30)
	DefaultCheckInHour  float64 `json:"defaultCheckInHour"`
	DefaultCheckOutHour float64 `json:"defaultCheckOutHour"`

	// Limits for the early check-in / late checkout policy. Requests
	// outside these windows require an extra night instead of a fee.
	EarlyCheckInHourLimit float64 `json:"earlyCheckInHourLimit"`
	LateCheckOutHourLimit float64 `json:"lateCheckOutHourLimit"`

	// Housekeeping state, feeds the planning grid priority rule
	InMaintenance bool   `json:"inMaintenance"`
	InCleaning    bool   `json:"inCleaning"`
	OutOfOrder    bool   `json:"outOfOrder"`
	Notes         string `json:"notes,omitempty"`
}

// RoomRepository defines the interface for fetching room reference data
type RoomRepository interface {
	// FetchRooms returns all rooms known to the backend
	FetchRooms() ([]Room, error)
}
