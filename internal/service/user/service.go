package user

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepo}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserAdminResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserAdminResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserAdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleUser
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hash),
		PerDayRate:   req.PerDayRate,
		IsActive:     true,
	})
	if err != nil {
		return user.UserAdminResponse{}, err
	}

	return mapToAdminResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return mapToResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserAdminResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserAdminResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapToAdminResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserAdminResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserAdminResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserAdminResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.PerDayRate != nil {
		u.PerDayRate = req.PerDayRate
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	now := time.Now().UTC()
	u.UpdatedAt = &now

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserAdminResponse{}, err
	}
	return mapToAdminResponse(u), nil
}

// DeactivateUser implements user.UserService. The row is kept so attendance
// history stays attributable.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, id string) error {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	u.IsActive = false
	now := time.Now().UTC()
	u.UpdatedAt = &now
	return s.UserRepository.Update(ctx, u)
}

func mapToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToAdminResponse(u user.User) user.UserAdminResponse {
	return user.UserAdminResponse{
		UserResponse: mapToResponse(u),
		PerDayRate:   u.PerDayRate,
	}
}
