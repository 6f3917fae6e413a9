package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	MemberID int64
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to members.
type AccessTokenClaims struct {
	MemberID int64 `json:"member_id"`
	jwt.RegisteredClaims
}
