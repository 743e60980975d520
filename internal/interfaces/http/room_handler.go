package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
)

type RoomHandler struct {
	store *application.Store
}

func NewRoomHandler(store *application.Store) *RoomHandler {
	return &RoomHandler{
		store: store,
	}
}

func (h *RoomHandler) GetAllRooms(c *fiber.Ctx) error {
	return c.JSON(h.store.Rooms())
}

func (h *RoomHandler) GetRoomByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	room, ok := h.store.Room(id)
	if !ok {
		return notFound(c, "room not found")
	}
	return c.JSON(room)
}

func (h *RoomHandler) GetReservationTypes(c *fiber.Ctx) error {
	return c.JSON(h.store.ReservationTypes())
}

func (h *RoomHandler) GetActivities(c *fiber.Ctx) error {
	return c.JSON(h.store.Activities())
}

// RefreshRooms reloads rooms and activities from the backing repositories.
// The window defaults to the current month when from/to are absent.
func (h *RoomHandler) RefreshRooms(c *fiber.Ctx) error {
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	windowEnd := windowStart.AddDate(0, 1, 0)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			return badRequest(c, "invalid from, use YYYY-MM-DD")
		}
		windowStart = from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			return badRequest(c, "invalid to, use YYYY-MM-DD")
		}
		windowEnd = to
	}
	if !windowEnd.After(windowStart) {
		return badRequest(c, "to must be after from")
	}

	h.store.Refresh(windowStart, windowEnd)
	return c.JSON(fiber.Map{
		"rooms":      len(h.store.Rooms()),
		"activities": len(h.store.Activities()),
	})
}
