package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a checkout session token.
// The token is handed to the storefront page on session creation and must
// accompany every subsequent checkout call.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
}
