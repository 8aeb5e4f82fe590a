package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Session converts verified claims into the caller's session.
func (c *AppClaims) Session() Session {
	return Session{UserID: c.UserID, Role: Role(c.Role)}
}
