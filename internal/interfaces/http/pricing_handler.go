package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type PricingHandler struct {
	store *application.Store
}

func NewPricingHandler(store *application.Store) *PricingHandler {
	return &PricingHandler{
		store: store,
	}
}

type quoteRequest struct {
	RoomID          int    `json:"roomId" validate:"required"`
	ReservationType string `json:"reservationType" validate:"required,oneof=overnight day_use flexible"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`

	EarlyCheckInRequested bool     `json:"earlyCheckInRequested"`
	EarlyCheckInHour      *float64 `json:"earlyCheckInHour"`
	LateCheckOutRequested bool     `json:"lateCheckOutRequested"`
	LateCheckOutHour      *float64 `json:"lateCheckOutHour"`
}

// Quote prices a prospective stay without creating anything
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}

	room, ok := h.store.Room(req.RoomID)
	if !ok {
		return notFound(c, "room not found")
	}
	checkIn, err := parseDateTime(req.CheckIn)
	if err != nil {
		return badRequest(c, "invalid checkIn, use RFC 3339 or YYYY-MM-DD")
	}
	checkOut, err := parseDateTime(req.CheckOut)
	if err != nil {
		return badRequest(c, "invalid checkOut, use RFC 3339 or YYYY-MM-DD")
	}

	stay := domain.Stay{
		RoomID:                req.RoomID,
		ReservationType:       domain.ReservationType(req.ReservationType),
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		EarlyCheckInRequested: req.EarlyCheckInRequested,
		EarlyCheckInHour:      req.EarlyCheckInHour,
		LateCheckOutRequested: req.LateCheckOutRequested,
		LateCheckOutHour:      req.LateCheckOutHour,
	}
	return c.JSON(application.QuoteStay(stay, room))
}

// EvaluateHourRequest reports how an early check-in or late checkout request
// would be priced against the room's hour limits
func (h *PricingHandler) EvaluateHourRequest(c *fiber.Ctx) error {
	kind := c.Query("kind")
	if kind != string(application.HourRequestEarly) && kind != string(application.HourRequestLate) {
		return badRequest(c, "kind must be early or late")
	}
	hour, err := strconv.ParseFloat(c.Query("hour"), 64)
	if err != nil {
		return badRequest(c, "invalid hour")
	}
	roomID, err := strconv.Atoi(c.Query("roomId"))
	if err != nil {
		return badRequest(c, "invalid roomId")
	}
	room, ok := h.store.Room(roomID)
	if !ok {
		return notFound(c, "room not found")
	}

	eval := application.EvaluateHourRequest(application.HourRequestKind(kind), hour, room)
	return c.JSON(eval)
}
