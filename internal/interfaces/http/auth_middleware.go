package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/polyplus/inventory-api/internal/application/dto"
	pkgjwt "github.com/polyplus/inventory-api/pkg/jwt"
)

const localOwnerUID = "owner_uid"

// AuthMiddleware verifies the Bearer token minted by the identity provider
// and stores the owner uid in the request locals. Mounted only when a JWT
// secret is configured.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "missing bearer token"})
		}
		ownerUID, err := pkgjwt.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid or expired token"})
		}
		c.Locals(localOwnerUID, ownerUID)
		return c.Next()
	}
}

// GetOwnerUID returns the authenticated owner uid, or "" outside the
// middleware.
func GetOwnerUID(c *fiber.Ctx) string {
	uid, _ := c.Locals(localOwnerUID).(string)
	return uid
}
