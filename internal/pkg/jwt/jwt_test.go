package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	employeeID := "0192a1b2-7c3d-7e4f-8a5b-6c7d8e9f0a1b"

	token, expiresAt, err := svc.GenerateAccessToken(user.Principal{
		UserID:     "user-1",
		EmployeeID: &employeeID,
		Role:       user.RoleHR,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	p, err := PrincipalFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, user.RoleHR, p.Role)
	require.NotNil(t, p.EmployeeID)
	assert.Equal(t, employeeID, *p.EmployeeID)
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_GenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "forever")

	_, _, err := svc.GenerateAccessToken(user.Principal{UserID: "user-1", Role: user.RoleEmployee})

	assert.Error(t, err)
}

func TestPrincipalFromContext_UnknownRole(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	token, _, err := svc.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "owner",
		"type":    "access",
	})
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), token, nil)
	_, err = PrincipalFromContext(ctx)

	assert.ErrorIs(t, err, user.ErrUnknownRole)
}
