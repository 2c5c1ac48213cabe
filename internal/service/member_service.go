package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yvonlcy/wanderlust-api/internal/events"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// MemberService covers member self-service operations: favourites and the
// profile photo.
type MemberService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
}

// NewMemberService builds the service.
func NewMemberService(accounts repository.AccountRepository, dispatcher events.Dispatcher) *MemberService {
	return &MemberService{accounts: accounts, dispatcher: dispatcher}
}

// AddFavourite adds a hotel to the member's favourites set. Adding an
// already-favourited hotel is a no-op.
func (s *MemberService) AddFavourite(ctx context.Context, memberID, hotelID string) error {
	if hotelID == "" {
		return apperrors.NewValidationError("hotelId is required", nil)
	}
	if err := s.accounts.AddFavorite(ctx, memberID, hotelID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", nil)
		}
		return apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventFavouriteAdded,
			Timestamp: time.Now(),
			Payload:   events.FavouriteAddedPayload{AccountID: memberID, HotelID: hotelID},
		})
	}
	return nil
}

// ListFavourites returns the member's favourite hotel ids.
func (s *MemberService) ListFavourites(ctx context.Context, memberID string) ([]string, error) {
	favorites, err := s.accounts.ListFavorites(ctx, memberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("member", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return favorites, nil
}

// RemoveFavourite removes a hotel from the member's favourites set. A
// hotel that was never favourited is not-found, unlike the idempotent add.
func (s *MemberService) RemoveFavourite(ctx context.Context, memberID, hotelID string) error {
	if err := s.accounts.RemoveFavorite(ctx, memberID, hotelID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("favourite", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// SetPhoto records the stored photo URL on the member's account.
func (s *MemberService) SetPhoto(ctx context.Context, memberID, photoURL string) error {
	if err := s.accounts.SetPhotoURL(ctx, memberID, photoURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}
