package pasetotoken

import (
	"time"

	"github.com/google/uuid"

	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

// Claims is the app-facing token payload.
type Claims struct {
	PrincipalID uuid.UUID
	Role        reqctx.Role

	Issuer   string
	Audience string

	IssuedAt  time.Time
	ExpiresAt time.Time
	TokenID   string // jti
}

// Principal converts the claims to the request-scoped principal.
func (c *Claims) Principal() reqctx.Principal {
	return reqctx.Principal{ID: c.PrincipalID, Role: c.Role}
}

// IsExpired reports whether the token has passed its expiry.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
