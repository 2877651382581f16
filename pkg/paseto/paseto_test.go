package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemobank/hemobank_backend/pkg/reqctx"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "hemobank-test",
		Audience:  "hemobank-api",
		AccessTTL: ttl,
	}, NewLocalKeys())
	require.NoError(t, err)
	return m
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := newTestManager(t, time.Hour)

	principal := reqctx.Principal{ID: uuid.New(), Role: reqctx.RoleBiologist}
	tok, err := m.Issue(principal)
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, principal.ID, claims.PrincipalID)
	assert.Equal(t, reqctx.RoleBiologist, claims.Role)
	assert.Equal(t, principal, claims.Principal())
	assert.False(t, claims.IsExpired())
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	tok, err := m.Issue(reqctx.Principal{ID: uuid.New(), Role: reqctx.RoleChefService})
	require.NoError(t, err)

	tampered := tok[:len(tok)-4] + "AAAA"
	_, err = m.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	m1 := newTestManager(t, time.Hour)
	m2 := newTestManager(t, time.Hour)

	tok, err := m1.Issue(reqctx.Principal{ID: uuid.New(), Role: reqctx.RoleBiologist})
	require.NoError(t, err)

	_, err = m2.Verify(tok)
	assert.Error(t, err, "token encrypted under a different key must not verify")
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := newTestManager(t, time.Millisecond)

	tok, err := m.Issue(reqctx.Principal{ID: uuid.New(), Role: reqctx.RoleBiologist})
	require.NoError(t, err)

	// Token timestamps carry second precision; sleep past the boundary.
	time.Sleep(1100 * time.Millisecond)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyLongLivedManager(t *testing.T) {
	// The manager is built once at startup and must keep accepting tokens
	// issued at any later instant.
	m := newTestManager(t, time.Hour)

	time.Sleep(1500 * time.Millisecond)

	principal := reqctx.Principal{ID: uuid.New(), Role: reqctx.RoleChefService}
	tok, err := m.Issue(principal)
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, principal, claims.Principal())
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Mode: ModeLocal, Audience: "a"}, NewLocalKeys())
	assert.Error(t, err, "missing issuer")

	_, err = New(Config{Mode: ModePublic, Issuer: "i", Audience: "a"}, NewLocalKeys())
	assert.Error(t, err, "mode mismatch with keys")
}
