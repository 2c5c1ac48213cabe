package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yvonlcy/wanderlust-api/internal/api/dto"
	"github.com/yvonlcy/wanderlust-api/internal/auth"
	"github.com/yvonlcy/wanderlust-api/internal/service"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// MessagesHandler exposes direct messaging endpoints. All routes require
// authentication; the sender is always the authenticated caller.
type MessagesHandler struct {
	messages *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messageService}
}

// Send handles POST /messages.
func (h *MessagesHandler) Send(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.MessageSendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	message, err := h.messages.Send(c.Context(), principal.AccountID, req.ToID, req.Content)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      message.ID,
		"message": "Message sent",
	})
}

// Reply handles POST /messages/:id/reply.
func (h *MessagesHandler) Reply(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.MessageReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.messages.Reply(c.Context(), c.Params("id"), principal.AccountID, req.Content); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Reply sent"})
}

// List handles GET /messages. Callers may only list their own threads.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	accountID := c.Query("userId")
	if accountID == "" {
		accountID = principal.AccountID
	}
	if accountID != principal.AccountID {
		return apperrors.NewForbidden("cannot list another account's messages")
	}

	messages, err := h.messages.List(c.Context(), accountID)
	if err != nil {
		return err
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, dto.NewMessageResponse(message))
	}
	return c.JSON(fiber.Map{"messages": out})
}

// Delete handles DELETE /messages/:id.
func (h *MessagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.messages.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Message deleted"})
}
