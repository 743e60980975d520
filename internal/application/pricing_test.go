package application

import (
	"testing"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

func testRoom() domain.Room {
	return domain.Room{
		ID:                  1,
		Name:                "Suite 101",
		PricePerNight:       15000,
		HourlyRate:          2000,
		DayUsePrice:         10000,
		DefaultCheckInHour:  14,
		DefaultCheckOutHour: 12,
	}
}

func hourPtr(h float64) *float64 { return &h }

func TestComputeStayTotal(t *testing.T) {
	room := testRoom()

	tests := []struct {
		name string
		stay domain.Stay
		want float64
	}{
		{
			name: "overnight partial night rounds up",
			stay: domain.Stay{
				ReservationType: domain.ReservationOvernight,
				CheckIn:         time.Date(2025, 8, 1, 23, 45, 0, 0, time.UTC),
				CheckOut:        time.Date(2025, 8, 2, 11, 0, 0, 0, time.UTC),
			},
			want: 15000,
		},
		{
			name: "overnight two nights",
			stay: domain.Stay{
				ReservationType: domain.ReservationOvernight,
				CheckIn:         time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
				CheckOut:        time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC),
			},
			want: 30000,
		},
		{
			name: "day use is a flat price regardless of duration",
			stay: domain.Stay{
				ReservationType: domain.ReservationDayUse,
				CheckIn:         time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
				CheckOut:        time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC),
			},
			want: 10000,
		},
		{
			name: "flexible bills per started hour",
			stay: domain.Stay{
				ReservationType: domain.ReservationFlexible,
				CheckIn:         time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
				CheckOut:        time.Date(2025, 8, 1, 17, 30, 0, 0, time.UTC),
			},
			want: 8000,
		},
		{
			name: "late checkout supplement",
			stay: domain.Stay{
				ReservationType:       domain.ReservationFlexible,
				CheckIn:               time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
				CheckOut:              time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC),
				LateCheckOutRequested: true,
				LateCheckOutHour:      hourPtr(20),
			},
			want: 24000,
		},
		{
			name: "early checkin supplement",
			stay: domain.Stay{
				ReservationType:       domain.ReservationOvernight,
				CheckIn:               time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
				CheckOut:              time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC),
				EarlyCheckInRequested: true,
				EarlyCheckInHour:      hourPtr(10),
			},
			want: 2*15000 + 4*2000,
		},
		{
			name: "supplement hour past default adds nothing",
			stay: domain.Stay{
				ReservationType:       domain.ReservationOvernight,
				CheckIn:               time.Date(2025, 8, 1, 16, 0, 0, 0, time.UTC),
				CheckOut:              time.Date(2025, 8, 2, 11, 0, 0, 0, time.UTC),
				EarlyCheckInRequested: true,
				EarlyCheckInHour:      hourPtr(16),
			},
			want: 15000,
		},
		{
			name: "requested flag without hour is ignored",
			stay: domain.Stay{
				ReservationType:       domain.ReservationOvernight,
				CheckIn:               time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
				CheckOut:              time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC),
				LateCheckOutRequested: true,
			},
			want: 15000,
		},
		{
			name: "zero interval prices zero",
			stay: domain.Stay{
				ReservationType: domain.ReservationOvernight,
			},
			want: 0,
		},
		{
			name: "inverted interval prices zero",
			stay: domain.Stay{
				ReservationType: domain.ReservationOvernight,
				CheckIn:         time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC),
				CheckOut:        time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
			},
			want: 0,
		},
		{
			name: "unknown reservation type prices zero",
			stay: domain.Stay{
				ReservationType: "weekly",
				CheckIn:         time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC),
				CheckOut:        time.Date(2025, 8, 8, 12, 0, 0, 0, time.UTC),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStayTotal(tt.stay, room); got != tt.want {
				t.Errorf("ComputeStayTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuoteStayBreakdownMatchesTotal(t *testing.T) {
	room := testRoom()
	stay := domain.Stay{
		ReservationType:       domain.ReservationOvernight,
		CheckIn:               time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
		CheckOut:              time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC),
		EarlyCheckInRequested: true,
		EarlyCheckInHour:      hourPtr(10),
		LateCheckOutRequested: true,
		LateCheckOutHour:      hourPtr(15),
	}

	q := QuoteStay(stay, room)
	if q.Unit != "night" {
		t.Errorf("Unit = %q, want night", q.Unit)
	}
	if q.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", q.Quantity)
	}
	if len(q.Supplements) != 2 {
		t.Fatalf("got %d supplements, want 2", len(q.Supplements))
	}

	sum := q.BaseAmount
	for _, s := range q.Supplements {
		sum += s.Amount
	}
	if q.Total != sum {
		t.Errorf("Total = %v, breakdown sums to %v", q.Total, sum)
	}
	if q.Total != ComputeStayTotal(stay, room) {
		t.Errorf("Total = %v, ComputeStayTotal = %v", q.Total, ComputeStayTotal(stay, room))
	}
}

func TestOvernightPriceMonotonicInDuration(t *testing.T) {
	room := testRoom()
	checkIn := time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC)

	prev := 0.0
	for hours := 1; hours <= 120; hours += 6 {
		stay := domain.Stay{
			ReservationType: domain.ReservationOvernight,
			CheckIn:         checkIn,
			CheckOut:        checkIn.Add(time.Duration(hours) * time.Hour),
		}
		total := ComputeStayTotal(stay, room)
		if total < prev {
			t.Fatalf("total dropped from %v to %v at %dh", prev, total, hours)
		}
		prev = total
	}
}

func TestEvaluateHourRequest(t *testing.T) {
	room := testRoom()
	room.EarlyCheckInHourLimit = 6
	room.LateCheckOutHourLimit = 18

	tests := []struct {
		name     string
		kind     HourRequestKind
		hour     float64
		wantCode string
		wantXN   bool
	}{
		{"early before limit needs extra night", HourRequestEarly, 4.5, PricingFullNight, true},
		{"early at limit is a fee", HourRequestEarly, 6, PricingHalfDay, false},
		{"early after limit is a fee", HourRequestEarly, 9, PricingHalfDay, false},
		{"late past limit needs extra night", HourRequestLate, 21, PricingFullNight, true},
		{"late at limit is a fee", HourRequestLate, 18, PricingHalfDay, false},
		{"late before limit is a fee", HourRequestLate, 15, PricingHalfDay, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := EvaluateHourRequest(tt.kind, tt.hour, room)
			if !eval.Accepted {
				t.Fatal("request not accepted")
			}
			if eval.PricingCode != tt.wantCode {
				t.Errorf("PricingCode = %q, want %q", eval.PricingCode, tt.wantCode)
			}
			if eval.ExtraNight != tt.wantXN {
				t.Errorf("ExtraNight = %v, want %v", eval.ExtraNight, tt.wantXN)
			}
		})
	}
}

func TestEvaluateHourRequestDefaultsLimits(t *testing.T) {
	room := testRoom() // no explicit limits

	eval := EvaluateHourRequest(HourRequestEarly, 5, room)
	if eval.LimitHour != 6 {
		t.Errorf("early limit = %v, want default 6", eval.LimitHour)
	}
	if !eval.ExtraNight {
		t.Error("5h arrival against the 6h default should need an extra night")
	}

	eval = EvaluateHourRequest(HourRequestLate, 19, room)
	if eval.LimitHour != 18 {
		t.Errorf("late limit = %v, want default 18", eval.LimitHour)
	}
	if !eval.ExtraNight {
		t.Error("19h departure against the 18h default should need an extra night")
	}
}

func TestEvaluateHourRequestUnknownKind(t *testing.T) {
	eval := EvaluateHourRequest("sideways", 10, testRoom())
	if eval.Accepted {
		t.Error("unknown kind should not be accepted")
	}
	if eval.PricingCode != PricingRejected {
		t.Errorf("PricingCode = %q, want %q", eval.PricingCode, PricingRejected)
	}
}
