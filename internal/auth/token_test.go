package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/dom/floricola-erp/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-for-testing-only"

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := auth.NewTokenIssuer("", time.Hour)
	assert.Error(t, err)

	_, err = auth.NewTokenIssuer(testSecret, 0)
	assert.Error(t, err)
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := auth.NewTokenIssuer(testSecret, 8*time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("0190a0a0-0000-7000-8000-000000000001", "rosa@example.com", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "0190a0a0-0000-7000-8000-000000000001", claims.ID)
	assert.Equal(t, "0190a0a0-0000-7000-8000-000000000001", claims.Subject)
	assert.Equal(t, "rosa@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 8*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenIssuer_Expiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	issuer, err := auth.NewTokenIssuer(testSecret, 8*time.Hour, auth.WithClock(func() time.Time { return clock() }))
	require.NoError(t, err)

	token, err := issuer.Issue("id-1", "a@b.com", "user")
	require.NoError(t, err)

	clock = func() time.Time { return now.Add(7*time.Hour + 59*time.Minute) }
	_, err = issuer.Verify(token)
	assert.NoError(t, err)

	clock = func() time.Time { return now.Add(8*time.Hour + time.Minute) }
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalid)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, err := auth.NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := auth.NewTokenIssuer("another-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.Issue("id-1", "a@b.com", "user")
	require.NoError(t, err)

	valid, err := issuer.Issue("id-1", "a@b.com", "user")
	require.NoError(t, err)
	dot := strings.LastIndex(valid, ".")
	sig := []byte(valid[dot+1:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := valid[:dot+1] + string(sig)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
		ID: "id-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{ID: "id-1"})
	withoutExpiry, err := noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: foreign},
		{name: "tampered signature", token: tampered},
		{name: "alg none", token: unsigned},
		{name: "no expiry", token: withoutExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Verify(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalid)
			assert.Nil(t, claims)
		})
	}
}
