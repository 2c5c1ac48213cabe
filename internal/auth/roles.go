package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// RequireRole ensures the principal's role is in the allowed set. An empty
// set admits any authenticated role.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireSelf ensures the authenticated caller is the account named by the
// given path parameter. Operators are not exempt; member resources are
// strictly self-service.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if c.Params(param) != principal.AccountID {
			return apperrors.NewForbidden("cannot act on another account")
		}
		return c.Next()
	}
}
