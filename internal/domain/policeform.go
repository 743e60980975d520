package domain

import "time"

// PoliceFormStatus is the lifecycle state of a police registration form
type PoliceFormStatus string

const (
	PoliceFormDraft     PoliceFormStatus = "draft"
	PoliceFormValidated PoliceFormStatus = "validated"
	PoliceFormArchived  PoliceFormStatus = "archived"
)

// PoliceForm captures the occupant identity information required by the
// police registration for a stay. Validating a form performs the stay
// check-in.
type PoliceForm struct {
	ID        string           `json:"id"`
	StayID    int              `json:"stayId"`
	BookingID int              `json:"bookingId"`
	Status    PoliceFormStatus `json:"status"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	BirthPlace  string `json:"birthPlace,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`

	IDType   string `json:"idType"`
	IDNumber string `json:"idNumber"`

	StayPurpose      string `json:"stayPurpose,omitempty"`
	ArrivalTransport string `json:"arrivalTransport,omitempty"`
	NumberOfGuests   int    `json:"numberOfGuests,omitempty"`
	Notes            string `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
}
