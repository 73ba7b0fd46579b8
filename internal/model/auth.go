package model

import "github.com/golang-jwt/jwt/v5"

// DeviceClaims are JWT claims for device tokens issued at registration
type DeviceClaims struct {
	DeviceID string `json:"deviceId"`
	jwt.RegisteredClaims
}

// AdminClaims are JWT claims for schedule-admin tokens
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// RegisterDeviceResponse is returned when a device registers
type RegisterDeviceResponse struct {
	DeviceID string `json:"deviceId"`
	Token    string `json:"token"`
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful admin login
type LoginResponse struct {
	Token string `json:"token"`
}
