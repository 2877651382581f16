package middleware

import (
	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/hemobank/hemobank_backend/pkg/paseto"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

// RequireRole rejects requests whose verified token does not carry the given
// role. The role was fixed at login; no database lookup happens here.
func RequireRole(role reqctx.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return unauthorized(c)
		}
		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "forbidden"})
		}
		return c.Next()
	}
}
