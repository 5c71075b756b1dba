package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the guard on successful verification.
const (
	LocalsAccountID = "accountId"
	LocalsEmail     = "email"
)

// NewGuard returns a Fiber middleware that validates Bearer JWT (HS256).
// A missing header is 401; a present but unverifiable token is 403.
// On success the decoded identity is stored in the request locals.
func NewGuard(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.TrimSpace(header) == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing authorization token"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(header)
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		identity, err := svc.Verify(tokenStr)
		if err != nil {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(LocalsAccountID, identity.AccountID)
		c.Locals(LocalsEmail, identity.Email)
		return c.Next()
	}
}
