package dto

import (
	"time"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// HotelCreateRequest payload for creating a hotel.
type HotelCreateRequest struct {
	Name        string   `json:"name"`
	Star        int      `json:"star"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Facilities  []string `json:"facilities"`
}

// HotelUpdateRequest payload for partial updates. Absent fields stay unchanged.
type HotelUpdateRequest struct {
	Name        *string  `json:"name"`
	Star        *int     `json:"star"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Facilities  []string `json:"facilities"`
}

// HotelResponse is the wire form of a hotel listing.
type HotelResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Star        int       `json:"star"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Facilities  []string  `json:"facilities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewHotelResponse maps a domain hotel to its wire form.
func NewHotelResponse(hotel domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Star:        hotel.Star,
		Address:     hotel.Address,
		City:        hotel.City,
		Country:     hotel.Country,
		Description: hotel.Description,
		Price:       hotel.Price,
		Facilities:  hotel.Facilities,
		CreatedAt:   hotel.CreatedAt,
		UpdatedAt:   hotel.UpdatedAt,
	}
}
