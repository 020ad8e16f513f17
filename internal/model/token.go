package model

// TokenManager issues and validates API access tokens.
type TokenManager interface {
	GenerateAccessToken(userID string) (string, error)
	ParseAccessToken(tokenString string) (string, error)
}
