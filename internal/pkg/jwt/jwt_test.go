//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestGenerateAndValidate(t *testing.T) {
	clk := clock.NewMockClock(t0)
	svc := jwt.NewService("secret", time.Hour, clk)
	clientID := uuid.New()

	token, err := svc.GenerateToken(clientID)
	require.NoError(t, err)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, got)
	assert.Equal(t, time.Hour, svc.TokenDuration())
}

func TestValidateToken_Expired(t *testing.T) {
	clk := clock.NewMockClock(t0)
	svc := jwt.NewService("secret", time.Hour, clk)

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	clk.Add(2 * time.Hour)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_Invalid(t *testing.T) {
	clk := clock.NewMockClock(t0)
	svc := jwt.NewService("secret", time.Hour, clk)

	other, err := jwt.NewService("other-secret", time.Hour, clk).GenerateToken(uuid.New())
	require.NoError(t, err)

	foreignIssuer, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    "someone-else",
		ExpiresAt: gojwt.NewNumericDate(t0.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	badSubject, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		Issuer:    "retreat-api",
		ExpiresAt: gojwt.NewNumericDate(t0.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":        "not.a.token",
		"wrong secret":   other,
		"foreign issuer": foreignIssuer,
		"bad subject":    badSubject,
		"empty":          "",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
