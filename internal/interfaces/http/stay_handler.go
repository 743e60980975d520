package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type StayHandler struct {
	store   *application.Store
	machine *application.StateMachine
}

func NewStayHandler(store *application.Store, machine *application.StateMachine) *StayHandler {
	return &StayHandler{
		store:   store,
		machine: machine,
	}
}

type stayRequest struct {
	RoomID          int    `json:"roomId" validate:"required"`
	OccupantID      int    `json:"occupantId"`
	OccupantName    string `json:"occupantName"`
	ReservationType string `json:"reservationType" validate:"required,oneof=overnight day_use flexible"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`

	EarlyCheckInRequested bool     `json:"earlyCheckInRequested"`
	EarlyCheckInHour      *float64 `json:"earlyCheckInHour"`
	LateCheckOutRequested bool     `json:"lateCheckOutRequested"`
	LateCheckOutHour      *float64 `json:"lateCheckOutHour"`

	Notes string `json:"notes"`
}

type consumptionLineRequest struct {
	Item      string  `json:"item" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

// CreateStay adds a stay under a booking and returns the enriched projection
func (h *StayHandler) CreateStay(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}
	var req stayRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}

	checkIn, err := parseDateTime(req.CheckIn)
	if err != nil {
		return badRequest(c, "invalid checkIn, use RFC 3339 or YYYY-MM-DD")
	}
	checkOut, err := parseDateTime(req.CheckOut)
	if err != nil {
		return badRequest(c, "invalid checkOut, use RFC 3339 or YYYY-MM-DD")
	}

	enriched := h.store.AddStay(bookingID, application.StayInput{
		RoomID:                req.RoomID,
		OccupantID:            req.OccupantID,
		OccupantName:          req.OccupantName,
		ReservationType:       domain.ReservationType(req.ReservationType),
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		EarlyCheckInRequested: req.EarlyCheckInRequested,
		EarlyCheckInHour:      req.EarlyCheckInHour,
		LateCheckOutRequested: req.LateCheckOutRequested,
		LateCheckOutHour:      req.LateCheckOutHour,
		Notes:                 req.Notes,
	})
	return c.Status(fiber.StatusCreated).JSON(enriched)
}

func (h *StayHandler) GetAllStays(c *fiber.Ctx) error {
	return c.JSON(h.store.Stays())
}

func (h *StayHandler) GetStayByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	stay, ok := h.store.Stay(id)
	if !ok {
		return notFound(c, "stay not found")
	}
	return c.JSON(h.store.EnrichStay(*stay))
}

// UpdateStayStatus applies a stay transition and resyncs the parent booking
func (h *StayHandler) UpdateStayStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=pending checked_in checked_out cancelled"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}

	if _, ok := h.store.Stay(id); !ok {
		return notFound(c, "stay not found")
	}
	if !h.machine.UpdateStayStatus(id, domain.StayStatus(req.Status)) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "transition not allowed"})
	}

	stay, _ := h.store.Stay(id)
	return c.JSON(h.store.EnrichStay(*stay))
}

func (h *StayHandler) CheckIn(c *fiber.Ctx) error {
	return h.applyTransition(c, domain.StayCheckedIn)
}

func (h *StayHandler) CheckOut(c *fiber.Ctx) error {
	return h.applyTransition(c, domain.StayCheckedOut)
}

func (h *StayHandler) Cancel(c *fiber.Ctx) error {
	return h.applyTransition(c, domain.StayCancelled)
}

func (h *StayHandler) applyTransition(c *fiber.Ctx, next domain.StayStatus) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if _, ok := h.store.Stay(id); !ok {
		return notFound(c, "stay not found")
	}
	if !h.machine.UpdateStayStatus(id, next) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "transition not allowed"})
	}
	stay, _ := h.store.Stay(id)
	return c.JSON(h.store.EnrichStay(*stay))
}

func (h *StayHandler) AddFoodLine(c *fiber.Ctx) error {
	return h.addLine(c, domain.LineFood)
}

func (h *StayHandler) AddEventLine(c *fiber.Ctx) error {
	return h.addLine(c, domain.LineEvent)
}

func (h *StayHandler) AddServiceLine(c *fiber.Ctx) error {
	return h.addLine(c, domain.LineService)
}

func (h *StayHandler) addLine(c *fiber.Ctx, kind domain.LineKind) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var req consumptionLineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}
	if _, ok := h.store.Stay(id); !ok {
		return notFound(c, "stay not found")
	}

	line := h.store.AddConsumptionLine(id, kind, req.Item, req.Quantity, req.UnitPrice)
	return c.Status(fiber.StatusCreated).JSON(line)
}
