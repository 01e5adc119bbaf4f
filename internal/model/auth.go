package model

import "github.com/golang-jwt/jwt/v5"

// HostClaims are JWT claims for a survey host
type HostClaims struct {
	HostID string `json:"hostId"`
	jwt.RegisteredClaims
}

// LoginResponse is returned on successful host login
type LoginResponse struct {
	Token  string `json:"token"`
	HostID string `json:"hostId"`
}
