package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/events"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// HotelCreateInput describes hotel creation payload.
type HotelCreateInput struct {
	Name        string
	Star        int
	Address     string
	City        string
	Country     string
	Description string
	Price       float64
	Facilities  []string
}

// HotelService coordinates hotel CRUD workflows.
type HotelService struct {
	hotels     repository.HotelRepository
	dispatcher events.Dispatcher
}

// NewHotelService builds the service.
func NewHotelService(hotels repository.HotelRepository, dispatcher events.Dispatcher) *HotelService {
	return &HotelService{hotels: hotels, dispatcher: dispatcher}
}

// List returns hotels matching the optional city/star filters.
func (s *HotelService) List(ctx context.Context, filter repository.HotelFilter) ([]domain.Hotel, error) {
	hotels, err := s.hotels.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return hotels, nil
}

// Get returns a hotel by id.
func (s *HotelService) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewValidationError("invalid hotel id", nil)
	}
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("hotel", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return hotel, nil
}

// Create validates and persists a new hotel listing.
func (s *HotelService) Create(ctx context.Context, in HotelCreateInput) (*domain.Hotel, error) {
	if in.Name == "" || in.City == "" || in.Country == "" {
		return nil, apperrors.NewValidationError("name, city and country are required", nil)
	}
	if in.Star < 1 || in.Star > 5 {
		return nil, apperrors.NewValidationError("star must be between 1 and 5", nil)
	}

	hotel := &domain.Hotel{
		Name:        in.Name,
		Star:        in.Star,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		Description: in.Description,
		Price:       in.Price,
		Facilities:  in.Facilities,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventHotelCreated, hotel.ID, hotel.Name, hotel.City)
	return hotel, nil
}

// Update applies a partial update to a hotel listing.
func (s *HotelService) Update(ctx context.Context, id string, update repository.HotelUpdate) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("invalid hotel id", nil)
	}
	if update.Star != nil && (*update.Star < 1 || *update.Star > 5) {
		return apperrors.NewValidationError("star must be between 1 and 5", nil)
	}
	if err := s.hotels.Update(ctx, id, update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("hotel", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventHotelUpdated, id, "", "")
	return nil
}

// Delete removes a hotel listing.
func (s *HotelService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("invalid hotel id", nil)
	}
	if err := s.hotels.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("hotel", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventHotelDeleted, id, "", "")
	return nil
}

func (s *HotelService) publish(ctx context.Context, eventType events.EventType, hotelID, name, city string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   events.HotelPayload{HotelID: hotelID, Name: name, City: city},
	})
}
