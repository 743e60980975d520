package application

import (
	"fmt"
	"math"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

// Fallback hour limits when a room carries none, matching the backend
// configuration defaults
const (
	defaultEarlyLimit = 6.0
	defaultLateLimit  = 18.0
)

// QuoteLine is one priced component inside a quote breakdown
type QuoteLine struct {
	Type   string  `json:"type"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Quote is the structured breakdown of a stay price: the base occupancy
// amount plus the early/late supplements. Total always equals what
// ComputeStayTotal returns for the same inputs.
type Quote struct {
	Unit        string      `json:"unit"`
	UnitPrice   float64     `json:"unitPrice"`
	Quantity    float64     `json:"quantity"`
	BaseAmount  float64     `json:"baseAmount"`
	Supplements []QuoteLine `json:"supplements"`
	Total       float64     `json:"total"`
}

// ComputeStayTotal computes the room occupancy price of a stay. It is a pure
// function of the stay interval, reservation type and room rates.
//
// The engine is advisory: a missing or inverted interval yields 0, never an
// error. Callers treat the zero as the validity signal and decide themselves
// whether to block the operation.
func ComputeStayTotal(stay domain.Stay, room domain.Room) float64 {
	return QuoteStay(stay, room).Total
}

// QuoteStay computes the same total as ComputeStayTotal but keeps the
// composition visible: base amount per billing unit plus the requested
// early/late supplements.
func QuoteStay(stay domain.Stay, room domain.Room) Quote {
	q := Quote{Supplements: []QuoteLine{}}

	if stay.CheckIn.IsZero() || stay.CheckOut.IsZero() || !stay.CheckOut.After(stay.CheckIn) {
		return q
	}

	duration := stay.CheckOut.Sub(stay.CheckIn)

	switch stay.ReservationType {
	case domain.ReservationOvernight:
		nights := math.Ceil(duration.Hours() / 24)
		q.Unit = "night"
		q.UnitPrice = room.PricePerNight
		q.Quantity = nights
		q.BaseAmount = nights * room.PricePerNight
	case domain.ReservationDayUse:
		q.Unit = "slot"
		q.UnitPrice = room.DayUsePrice
		q.Quantity = 1
		q.BaseAmount = room.DayUsePrice
	case domain.ReservationFlexible:
		hours := math.Ceil(duration.Hours())
		q.Unit = "hour"
		q.UnitPrice = room.HourlyRate
		q.Quantity = hours
		q.BaseAmount = hours * room.HourlyRate
	default:
		// Unknown billing model: nothing to price
		return q
	}

	if stay.EarlyCheckInRequested && stay.EarlyCheckInHour != nil {
		hours := math.Max(0, room.DefaultCheckInHour-*stay.EarlyCheckInHour)
		if extra := hours * room.HourlyRate; extra > 0 {
			q.Supplements = append(q.Supplements, QuoteLine{
				Type:   "early_checkin",
				Label:  fmt.Sprintf("Early check-in at %.2fh", *stay.EarlyCheckInHour),
				Amount: extra,
			})
		}
	}

	if stay.LateCheckOutRequested && stay.LateCheckOutHour != nil {
		hours := math.Max(0, *stay.LateCheckOutHour-room.DefaultCheckOutHour)
		if extra := hours * room.HourlyRate; extra > 0 {
			q.Supplements = append(q.Supplements, QuoteLine{
				Type:   "late_checkout",
				Label:  fmt.Sprintf("Late checkout at %.2fh", *stay.LateCheckOutHour),
				Amount: extra,
			})
		}
	}

	q.Total = q.BaseAmount
	for _, s := range q.Supplements {
		q.Total += s.Amount
	}
	return q
}

// HourRequestKind selects which bound an hour policy request adjusts
type HourRequestKind string

const (
	HourRequestEarly HourRequestKind = "early"
	HourRequestLate  HourRequestKind = "late"
)

// Pricing codes reported by EvaluateHourRequest
const (
	PricingFullNight = "FULL_NIGHT"
	PricingHalfDay   = "HALF_DAY"
	PricingRejected  = "REJECTED"
)

// HourEvaluation is the outcome of an early/late hour request evaluation
type HourEvaluation struct {
	Accepted    bool    `json:"accepted"`
	ExtraNight  bool    `json:"extraNight"`
	PricingCode string  `json:"pricingCode"`
	LimitHour   float64 `json:"limitHour"`
	Message     string  `json:"message"`
}

// EvaluateHourRequest decides whether an early check-in or late checkout
// request fits inside the room's allowed window (partial-day fee) or falls
// outside it and requires an extra night. The evaluation is advisory and
// never blocks a stay.
func EvaluateHourRequest(kind HourRequestKind, requestedHour float64, room domain.Room) HourEvaluation {
	earlyLimit := room.EarlyCheckInHourLimit
	if earlyLimit == 0 {
		earlyLimit = defaultEarlyLimit
	}
	lateLimit := room.LateCheckOutHourLimit
	if lateLimit == 0 {
		lateLimit = defaultLateLimit
	}

	switch kind {
	case HourRequestEarly:
		if requestedHour < earlyLimit {
			return HourEvaluation{
				Accepted:    true,
				ExtraNight:  true,
				PricingCode: PricingFullNight,
				LimitHour:   earlyLimit,
				Message:     fmt.Sprintf("arrival at %.2fh is before the %.2fh limit, a full extra night applies", requestedHour, earlyLimit),
			}
		}
		return HourEvaluation{
			Accepted:    true,
			PricingCode: PricingHalfDay,
			LimitHour:   earlyLimit,
			Message:     fmt.Sprintf("early check-in at %.2fh accepted with a partial-day fee", requestedHour),
		}
	case HourRequestLate:
		if requestedHour > lateLimit {
			return HourEvaluation{
				Accepted:    true,
				ExtraNight:  true,
				PricingCode: PricingFullNight,
				LimitHour:   lateLimit,
				Message:     fmt.Sprintf("departure at %.2fh is past the %.2fh limit, a full extra night applies", requestedHour, lateLimit),
			}
		}
		return HourEvaluation{
			Accepted:    true,
			PricingCode: PricingHalfDay,
			LimitHour:   lateLimit,
			Message:     fmt.Sprintf("late checkout at %.2fh accepted with a partial-day fee", requestedHour),
		}
	default:
		return HourEvaluation{
			PricingCode: PricingRejected,
			Message:     fmt.Sprintf("unknown request kind %q", kind),
		}
	}
}
