package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yvonlcy/wanderlust-api/internal/api/dto"
	"github.com/yvonlcy/wanderlust-api/internal/auth"
	"github.com/yvonlcy/wanderlust-api/internal/service"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// ProfileHandler returns the authenticated caller's public profile.
type ProfileHandler struct {
	auth *service.AuthService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: authService}
}

// Get handles GET /profile. The id and role come from the verified token;
// username and email are re-read from the store.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	account, err := h.auth.Profile(c.Context(), principal.AccountID)
	if err != nil {
		return err
	}

	return c.JSON(dto.ProfileResponse{
		ID:       principal.AccountID,
		Role:     string(principal.Role),
		Username: account.Username,
		Email:    account.Email,
	})
}
