package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yvonlcy/wanderlust-api/internal/api/dto"
	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/service"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// OperatorsHandler exposes operator registration and login endpoints.
type OperatorsHandler struct {
	auth *service.AuthService
}

// NewOperatorsHandler constructs handler.
func NewOperatorsHandler(authService *service.AuthService) *OperatorsHandler {
	return &OperatorsHandler{auth: authService}
}

// Register handles POST /operators/register. Requires the server-side
// signup code.
func (h *OperatorsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, err := h.auth.RegisterOperator(c.Context(), service.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		Agency:     req.Agency,
		SignupCode: req.SignupCode,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      account.ID,
		"message": "Operator registered",
	})
}

// Login handles POST /operators/login. Operators receive a single access
// token rather than a token pair.
func (h *OperatorsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, tokens, err := h.auth.Login(c.Context(), req.Username, req.Password, domain.RoleOperator)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token": tokens.Access,
		"user": dto.UserResponse{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
		},
	})
}
