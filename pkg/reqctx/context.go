// Package reqctx carries the request-scoped principal through context.
// The role is a closed two-variant type resolved once at authentication time;
// downstream code never re-derives it from storage.
package reqctx

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Role string

const (
	RoleBiologist   Role = "biologist"
	RoleChefService Role = "chef"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleBiologist || r == RoleChefService
}

// Principal identifies the authenticated caller.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

type ctxKey struct{}

var ErrNoPrincipal = errors.New("no principal in context")

// WithPrincipal returns a child context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext retrieves the authenticated principal.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	if !ok || p.ID == uuid.Nil {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
