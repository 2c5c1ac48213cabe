package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yvonlcy/wanderlust-api/internal/api/dto"
	"github.com/yvonlcy/wanderlust-api/internal/config"
	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/service"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// MembersHandler exposes member registration, login, refresh, favourites
// and photo upload endpoints.
type MembersHandler struct {
	auth    *service.AuthService
	members *service.MemberService
	upload  config.UploadConfig
}

// NewMembersHandler constructs handler.
func NewMembersHandler(authService *service.AuthService, memberService *service.MemberService, upload config.UploadConfig) *MembersHandler {
	return &MembersHandler{auth: authService, members: memberService, upload: upload}
}

// Register handles POST /members/register.
func (h *MembersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, err := h.auth.RegisterMember(c.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      account.ID,
		"message": "Member registered",
	})
}

// Login handles POST /members/login.
func (h *MembersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, tokens, err := h.auth.Login(c.Context(), req.Username, req.Password, domain.RoleMember)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"tokens": dto.TokensResponse{Access: tokens.Access, Refresh: tokens.Refresh},
		"user": dto.UserResponse{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
		},
	})
}

// RefreshToken handles POST /members/refresh-token.
func (h *MembersHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	access, _, err := h.auth.RefreshAccessToken(req.Refresh)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"access": access})
}

// AddFavourite handles POST /members/:id/favourites.
func (h *MembersHandler) AddFavourite(c *fiber.Ctx) error {
	var req dto.FavouriteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.members.AddFavourite(c.Context(), c.Params("id"), req.HotelID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Added to favourites"})
}

// ListFavourites handles GET /members/:id/favourites.
func (h *MembersHandler) ListFavourites(c *fiber.Ctx) error {
	favorites, err := h.members.ListFavourites(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"favorites": favorites})
}

// RemoveFavourite handles DELETE /members/:id/favourites/:hotelId.
func (h *MembersHandler) RemoveFavourite(c *fiber.Ctx) error {
	if err := h.members.RemoveFavourite(c.Context(), c.Params("id"), c.Params("hotelId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Removed from favourites"})
}

// UploadPhoto handles POST /members/:id/photo. Accepts a single image file
// under the "photo" form field.
func (h *MembersHandler) UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return apperrors.NewValidationError("photo file required", nil)
	}
	if file.Size > int64(h.upload.MaxSizeMB)*1024*1024 {
		return apperrors.NewValidationError(fmt.Sprintf("photo exceeds %dMB limit", h.upload.MaxSizeMB), nil)
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return apperrors.NewValidationError("only image files are allowed", nil)
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dest := filepath.Join(h.upload.Dir, filename)
	if err := c.SaveFile(file, dest); err != nil {
		return apperrors.MapError(err)
	}

	photoURL := "/" + filepath.ToSlash(dest)
	if err := h.members.SetPhoto(c.Context(), c.Params("id"), photoURL); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"photoUrl": photoURL})
}
