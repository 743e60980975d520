package email

import (
	"strings"
	"testing"
	"time"
)

func TestNewClientRejectsBadPort(t *testing.T) {
	if _, err := NewClient("smtp.example.com", "not-a-port", "u", "p", "Hotel", "no-reply@example.com"); err == nil {
		t.Fatal("expected an error for a non-numeric port")
	}
}

func TestBuildConfirmationHTML(t *testing.T) {
	conf := BookingConfirmation{
		GroupCode:   "BK20250801-ABCD1234",
		ClientName:  "Awa Diallo",
		ClientEmail: "awa@example.com",
		BookingDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Total:       45000,
		Stays: []StaySummary{
			{
				RoomName: "Suite 101",
				CheckIn:  time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC),
				Amount:   30000,
			},
		},
	}

	html := buildConfirmationHTML(conf, "Grafnet Hotel")

	for _, want := range []string{
		"Grafnet Hotel",
		"Awa Diallo",
		"BK20250801-ABCD1234",
		"Suite 101",
		"01/08/2025 14:00",
		"03/08/2025 12:00",
		"45000 FCFA",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("confirmation body missing %q", want)
		}
	}
}
