package transfer

import "github.com/golang-jwt/jwt/v5"

type SessionClaims struct {
	WorkspaceID string `json:"wid"`
	jwt.RegisteredClaims
}
