package domain

import "github.com/google/uuid"

// Session is a token pair issued by the authentication provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int
	UserID       uuid.UUID
	Email        string
}
