// file: model/token.go

package model

import "time"

// RefreshToken is the stored form of an opaque refresh token. Only the
// SHA-256 hash of the token is persisted.
type RefreshToken struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenPair is returned on login and refresh.
type TokenPair struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	Session      Session `json:"session"`
}
