package domain

import "time"

// Client represents a hotel client. Clients are referenced by bookings and
// stays, never owned by them.
type Client struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	MembershipTier string    `json:"membershipTier,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
