package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(userRepo user.UserRepository, refreshTokenRepo auth.RefreshTokenRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", 0, err
	}

	if !u.IsActive {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Refresh implements auth.AuthService. Rotation is single-use: the presented
// token is revoked whether or not issuing a replacement succeeds.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, string, int64, error) {
	tok, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}
	if err := jwxjwt.Validate(tok); err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return auth.TokenResponse{}, "", 0, auth.ErrTokenExpired
		}
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}
	if typ, ok := tok.Get("type"); !ok || typ != "refresh" {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, "", 0, err
	}
	if stored.Revoked {
		return auth.TokenResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return auth.TokenResponse{}, "", 0, auth.ErrTokenExpired
	}

	if err := s.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, err
	}
	if !u.IsActive {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	return s.refreshTokenRepo.RevokeAllForUser(ctx, userID)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, string, int64, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Store(ctx, auth.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   accessExpiresAt,
	}, refreshToken, refreshExpiresAt, nil
}
