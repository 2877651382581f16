package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pasetotoken "github.com/hemobank/hemobank_backend/pkg/paseto"
	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

func TestAuthRequiredInstallsPrincipal(t *testing.T) {
	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:      pasetotoken.ModeLocal,
		Issuer:    "hemobank-test",
		Audience:  "hemobank-api",
		AccessTTL: time.Hour,
	}, pasetotoken.NewLocalKeys())
	require.NoError(t, err)

	principal := reqctx.Principal{ID: uuid.New(), Role: reqctx.RoleBiologist}
	tok, err := mgr.Issue(principal)
	require.NoError(t, err)

	var (
		got    reqctx.Principal
		gotErr error
	)
	app := fiber.New()
	app.Get("/secure", AuthRequired(mgr), func(c fiber.Ctx) error {
		got, gotErr = reqctx.PrincipalFromContext(c.Context())
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, gotErr)
	assert.Equal(t, principal, got)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:      pasetotoken.ModeLocal,
		Issuer:    "hemobank-test",
		Audience:  "hemobank-api",
		AccessTTL: time.Hour,
	}, pasetotoken.NewLocalKeys())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/secure", AuthRequired(mgr), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
