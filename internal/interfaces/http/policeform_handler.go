package http

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

type PoliceFormHandler struct {
	service *application.PoliceFormService
	store   *application.Store
}

func NewPoliceFormHandler(service *application.PoliceFormService, store *application.Store) *PoliceFormHandler {
	return &PoliceFormHandler{
		service: service,
		store:   store,
	}
}

type policeFormRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birthDate"`
	BirthPlace  string `json:"birthPlace"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`

	IDType   string `json:"idType" validate:"required"`
	IDNumber string `json:"idNumber" validate:"required"`

	StayPurpose      string `json:"stayPurpose"`
	ArrivalTransport string `json:"arrivalTransport"`
	NumberOfGuests   int    `json:"numberOfGuests"`
	Notes            string `json:"notes"`
}

// OpenForm creates a draft police form for a stay
func (h *PoliceFormHandler) OpenForm(c *fiber.Ctx) error {
	stayID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid stay id")
	}
	var req policeFormRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg := validateStruct(req); msg != "" {
		return badRequest(c, msg)
	}
	if _, ok := h.store.Stay(stayID); !ok {
		return notFound(c, "stay not found")
	}

	form := h.service.Open(stayID, domain.PoliceForm{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		BirthDate:        req.BirthDate,
		BirthPlace:       req.BirthPlace,
		Nationality:      req.Nationality,
		Address:          req.Address,
		City:             req.City,
		Country:          req.Country,
		IDType:           req.IDType,
		IDNumber:         req.IDNumber,
		StayPurpose:      req.StayPurpose,
		ArrivalTransport: req.ArrivalTransport,
		NumberOfGuests:   req.NumberOfGuests,
		Notes:            req.Notes,
	})
	return c.Status(fiber.StatusCreated).JSON(form)
}

func (h *PoliceFormHandler) GetAllForms(c *fiber.Ctx) error {
	return c.JSON(h.store.PoliceForms())
}

func (h *PoliceFormHandler) GetFormByID(c *fiber.Ctx) error {
	form, ok := h.store.PoliceForm(c.Params("id"))
	if !ok {
		return notFound(c, "police form not found")
	}
	return c.JSON(form)
}

// ValidateForm validates a draft form, which also checks in the stay
func (h *PoliceFormHandler) ValidateForm(c *fiber.Ctx) error {
	form, err := h.service.Validate(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPoliceForm) {
			return notFound(c, "police form not found")
		}
		log.Printf("ValidateForm error: %v", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(form)
}

func (h *PoliceFormHandler) ArchiveForm(c *fiber.Ctx) error {
	form, err := h.service.Archive(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPoliceForm) {
			return notFound(c, "police form not found")
		}
		log.Printf("ArchiveForm error: %v", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(form)
}
