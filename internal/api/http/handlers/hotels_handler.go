package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yvonlcy/wanderlust-api/internal/api/dto"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	"github.com/yvonlcy/wanderlust-api/internal/service"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// HotelsHandler exposes hotel CRUD endpoints. Listing and lookup are
// public; mutations are operator-only (enforced in routing).
type HotelsHandler struct {
	hotels *service.HotelService
}

// NewHotelsHandler constructs handler.
func NewHotelsHandler(hotelService *service.HotelService) *HotelsHandler {
	return &HotelsHandler{hotels: hotelService}
}

// List handles GET /hotels with optional city and star query filters.
func (h *HotelsHandler) List(c *fiber.Ctx) error {
	var filter repository.HotelFilter

	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if starStr := c.Query("star"); starStr != "" {
		star, err := strconv.Atoi(starStr)
		if err != nil {
			return apperrors.NewValidationError("star must be a number", nil)
		}
		filter.Star = &star
	}

	hotels, err := h.hotels.List(c.Context(), filter)
	if err != nil {
		return err
	}

	out := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, dto.NewHotelResponse(hotel))
	}
	return c.JSON(out)
}

// Get handles GET /hotels/:id.
func (h *HotelsHandler) Get(c *fiber.Ctx) error {
	hotel, err := h.hotels.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewHotelResponse(*hotel))
}

// Create handles POST /hotels.
func (h *HotelsHandler) Create(c *fiber.Ctx) error {
	var req dto.HotelCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	hotel, err := h.hotels.Create(c.Context(), service.HotelCreateInput{
		Name:        req.Name,
		Star:        req.Star,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		Price:       req.Price,
		Facilities:  req.Facilities,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": hotel.ID})
}

// Update handles PUT /hotels/:id.
func (h *HotelsHandler) Update(c *fiber.Ctx) error {
	var req dto.HotelUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	update := repository.HotelUpdate{
		Name:        req.Name,
		Star:        req.Star,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Description: req.Description,
		Price:       req.Price,
		Facilities:  req.Facilities,
	}
	if err := h.hotels.Update(c.Context(), c.Params("id"), update); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Hotel updated"})
}

// Delete handles DELETE /hotels/:id.
func (h *HotelsHandler) Delete(c *fiber.Ctx) error {
	if err := h.hotels.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
