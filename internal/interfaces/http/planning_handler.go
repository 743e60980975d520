package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
)

type PlanningHandler struct {
	planning *application.PlanningService
}

func NewPlanningHandler(planning *application.PlanningService) *PlanningHandler {
	return &PlanningHandler{
		planning: planning,
	}
}

// GetBlocks projects room activities onto a time window as positioned blocks
func (h *PlanningHandler) GetBlocks(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return badRequest(c, "from and to are required")
	}
	from, err := parseDateTime(fromStr)
	if err != nil {
		return badRequest(c, "invalid from, use RFC 3339 or YYYY-MM-DD")
	}
	to, err := parseDateTime(toStr)
	if err != nil {
		return badRequest(c, "invalid to, use RFC 3339 or YYYY-MM-DD")
	}
	if !to.After(from) {
		return badRequest(c, "to must be after from")
	}

	roomID := 0
	if roomStr := c.Query("roomId"); roomStr != "" {
		roomID, err = strconv.Atoi(roomStr)
		if err != nil {
			return badRequest(c, "invalid roomId")
		}
	}

	blocks := h.planning.ProjectBlocks(roomID, from, to)
	return c.JSON(blocks)
}

// GetDayGrid builds the per-room per-day occupancy grid
func (h *PlanningHandler) GetDayGrid(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return badRequest(c, "from and to are required")
	}
	from, err := parseDate(fromStr)
	if err != nil {
		return badRequest(c, "invalid from, use YYYY-MM-DD")
	}
	to, err := parseDate(toStr)
	if err != nil {
		return badRequest(c, "invalid to, use YYYY-MM-DD")
	}
	if to.Before(from) {
		return badRequest(c, "to must not be before from")
	}

	return c.JSON(h.planning.BuildDayGrid(from, to))
}

func (h *PlanningHandler) GetKPIs(c *fiber.Ctx) error {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			return badRequest(c, "invalid date, use YYYY-MM-DD")
		}
		day = parsed
	}
	return c.JSON(h.planning.KPIs(day))
}
