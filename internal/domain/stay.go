package domain

import "time"

// StayStatus is the lifecycle state of an individual stay
type StayStatus string

const (
	StayPending    StayStatus = "pending"
	StayCheckedIn  StayStatus = "checked_in"
	StayCheckedOut StayStatus = "checked_out"
	StayCancelled  StayStatus = "cancelled"
)

// ReservationType selects the billing model applied to a stay
type ReservationType string

const (
	ReservationOvernight ReservationType = "overnight"
	ReservationDayUse    ReservationType = "day_use"
	ReservationFlexible  ReservationType = "flexible"
)

// ReservationTypeInfo describes a reservation type from the catalog,
// including the default slot hours applied when a stay does not set its own.
type ReservationTypeInfo struct {
	Code         ReservationType `json:"code"`
	Name         string          `json:"name"`
	CheckInHour  float64         `json:"checkInHour"`
	CheckOutHour float64         `json:"checkOutHour"`
	IsFlexible   bool            `json:"isFlexible"`
	Description  string          `json:"description,omitempty"`
}

// Stay represents a single room occupancy interval within a booking
type Stay struct {
	ID              int             `json:"id"`
	BookingID       int             `json:"bookingId"`
	RoomID          int             `json:"roomId"`
	OccupantID      int             `json:"occupantId,omitempty"`
	OccupantName    string          `json:"occupantName,omitempty"`
	ReservationType ReservationType `json:"reservationType"`
	CheckIn         time.Time       `json:"checkIn"`
	CheckOut        time.Time       `json:"checkOut"`
	Status          StayStatus      `json:"status"`

	// Early check-in / late checkout requests. Hours use the decimal
	// format (10.5 = 10h30); a nil hour means no hour was given and the
	// request carries no surcharge.
	EarlyCheckInRequested bool     `json:"earlyCheckInRequested"`
	EarlyCheckInHour      *float64 `json:"earlyCheckInHour,omitempty"`
	LateCheckOutRequested bool     `json:"lateCheckOutRequested"`
	LateCheckOutHour      *float64 `json:"lateCheckOutHour,omitempty"`

	// Set by the hour policy when a request falls outside the allowed
	// window or inside it, respectively
	ExtraNightRequired      bool   `json:"extraNightRequired"`
	WasRequalifiedFlexible  bool   `json:"wasRequalifiedFlexible"`
	RequalificationReason   string `json:"requalificationReason,omitempty"`

	Notes string `json:"notes,omitempty"`

	// Consumption line ids by kind, insertion ordered
	FoodLineIDs    []int `json:"foodLineIds"`
	EventLineIDs   []int `json:"eventLineIds"`
	ServiceLineIDs []int `json:"serviceLineIds"`
}

// EnrichedStay is a stay joined to its room, occupant and consumption lines,
// with the derived totals attached. It is a projection: building it never
// mutates the underlying stay.
type EnrichedStay struct {
	Stay

	Room     *Room   `json:"roomDetails,omitempty"`
	Occupant *Client `json:"occupant,omitempty"`

	FoodLines    []ConsumptionLine `json:"foodBookingLines"`
	EventLines   []ConsumptionLine `json:"eventBookingLines"`
	ServiceLines []ConsumptionLine `json:"serviceBookingLines"`

	RoomPriceTotal   float64 `json:"roomPriceTotal"`
	ConsumptionTotal float64 `json:"consumptionTotal"`
	TotalAmount      float64 `json:"totalAmount"`

	// True when the stay references a room missing from the current
	// collections; the price falls back to zero in that case.
	MissingRoom bool `json:"missingRoom,omitempty"`
}
