package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type BookingHandler struct {
	store   *application.Store
	machine *application.StateMachine
}

func NewBookingHandler(store *application.Store, machine *application.StateMachine) *BookingHandler {
	return &BookingHandler{
		store:   store,
		machine: machine,
	}
}

type bookingRequest struct {
	ClientID    int    `json:"clientId" validate:"required"`
	BookingDate string `json:"bookingDate"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req bookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}

	bookingDate := time.Now()
	if req.BookingDate != "" {
		parsed, err := parseDateTime(req.BookingDate)
		if err != nil {
			return badRequest(c, "invalid bookingDate, use RFC 3339 or YYYY-MM-DD")
		}
		bookingDate = parsed
	}

	booking := h.store.AddBooking(req.ClientID, bookingDate)
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) GetAllBookings(c *fiber.Ctx) error {
	return c.JSON(h.store.Bookings())
}

// GetBookingByID returns the booking together with its enriched stays
func (h *BookingHandler) GetBookingByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	booking, ok := h.store.Booking(id)
	if !ok {
		return notFound(c, "booking not found")
	}
	return c.JSON(fiber.Map{
		"booking": booking,
		"stays":   h.store.EnrichedStays(id),
	})
}

// UpdateBookingStatus applies a status transition. Illegal transitions are
// rejected with 409 and leave the booking untouched.
func (h *BookingHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}

	if _, ok := h.store.Booking(id); !ok {
		return notFound(c, "booking not found")
	}
	if !h.machine.UpdateBookingStatus(id, domain.BookingStatus(req.Status)) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "transition not allowed"})
	}

	booking, _ := h.store.Booking(id)
	return c.JSON(booking)
}
