package service

import (
	"cricguess/internal/model"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates device and admin tokens
type AuthService struct {
	jwtSecret     []byte
	adminUsername string
	adminPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// RegisterDevice mints a fresh anonymous device identity and a long-lived
// token for it. The device id is the only credential the client ever holds.
func (s *AuthService) RegisterDevice() (*model.RegisterDeviceResponse, error) {
	deviceID := uuid.New().String()
	token, err := s.generateDeviceToken(deviceID)
	if err != nil {
		return nil, err
	}
	return &model.RegisterDeviceResponse{
		DeviceID: deviceID,
		Token:    token,
	}, nil
}

// TokenForDevice re-issues a token for an existing device id
func (s *AuthService) TokenForDevice(deviceID string) (string, error) {
	return s.generateDeviceToken(deviceID)
}

func (s *AuthService) generateDeviceToken(deviceID string) (string, error) {
	claims := &model.DeviceClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			Subject:   deviceID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateDeviceToken validates a device JWT and returns claims
func (s *AuthService) ValidateDeviceToken(tokenString string) (*model.DeviceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.DeviceClaims)
	if !ok || !token.Valid || claims.DeviceID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Login validates schedule admin credentials and returns a short-lived token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return nil, ErrInvalidCredentials
	}

	claims := &model.AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: tokenString}, nil
}

// ValidateAdminToken validates an admin JWT and returns claims
func (s *AuthService) ValidateAdminToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
