package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	// The refresh token is returned separately so the handler can set it as
	// an HTTP-only cookie.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, string, int64, error)

	// Refresh rotates a refresh token: the presented token is revoked and a
	// new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, string, int64, error)

	// Logout revokes every refresh token the user holds.
	Logout(ctx context.Context, userID string) error
}
