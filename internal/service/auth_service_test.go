package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() *AuthService {
	return NewAuthService("test-secret", "admin", "hunter2")
}

func TestAuthService_RegisterDevice_RoundTrip(t *testing.T) {
	svc := newTestAuth()

	reg, err := svc.RegisterDevice()
	require.NoError(t, err)
	assert.NotEmpty(t, reg.DeviceID)
	assert.NotEmpty(t, reg.Token)

	claims, err := svc.ValidateDeviceToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.DeviceID, claims.DeviceID)
}

func TestAuthService_ValidateDeviceToken_RejectsGarbage(t *testing.T) {
	svc := newTestAuth()

	_, err := svc.ValidateDeviceToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService("different-secret", "admin", "hunter2")
	reg, err := other.RegisterDevice()
	require.NoError(t, err)

	_, err = svc.ValidateDeviceToken(reg.Token)
	assert.ErrorIs(t, err, ErrInvalidToken, "tokens signed with another secret are rejected")
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuth()

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("intruder", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)

	claims, err := svc.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthService_TokensAreNotInterchangeable(t *testing.T) {
	svc := newTestAuth()

	reg, err := svc.RegisterDevice()
	require.NoError(t, err)
	_, err = svc.ValidateAdminToken(reg.Token)
	assert.ErrorIs(t, err, ErrInvalidToken, "a device token grants no admin access")

	resp, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)
	_, err = svc.ValidateDeviceToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken, "an admin token is not a device identity")
}
