package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/hemobank/hemobank_backend/pkg/paseto"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token. On success, stores
// *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims) and installs the
// principal into the request context for the service layer.
func AuthRequired(mgr *pasetotoken.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithPrincipal(c.Context(), claims.Principal()))
		return c.Next()
	}
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "unauthorized"})
}
