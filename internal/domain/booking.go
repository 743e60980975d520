package domain

import "time"

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Booking groups one or more stays under a single client. The booking owns
// the list of stay ids (insertion order is creation order) but not the stay
// records themselves, which live in the flat stay collection.
type Booking struct {
	ID          int           `json:"id"`
	GroupCode   string        `json:"groupCode"`
	ClientID    int           `json:"clientId"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
	StayIDs     []int         `json:"stayIds"`
	TotalAmount float64       `json:"totalAmount"`
}
