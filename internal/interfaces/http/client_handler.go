package http

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type ClientHandler struct {
	store *application.Store
}

func NewClientHandler(store *application.Store) *ClientHandler {
	return &ClientHandler{
		store: store,
	}
}

type clientRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	MembershipTier string `json:"membershipTier"`
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}

	client := h.store.AddClient(req.Name, req.Email, req.Phone, req.MembershipTier)
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) GetAllClients(c *fiber.Ctx) error {
	return c.JSON(h.store.Clients())
}

func (h *ClientHandler) GetClientByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	client, ok := h.store.Client(id)
	if !ok {
		return notFound(c, "client not found")
	}
	return c.JSON(client)
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.store.DeleteClient(id); err != nil {
		if errors.Is(err, domain.ErrUnknownClient) {
			return notFound(c, "client not found")
		}
		log.Printf("DeleteClient error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error deleting client"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
