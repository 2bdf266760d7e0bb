package user

import "context"

type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserAdminResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	// ListUsers is the admin roster, pay rates included.
	ListUsers(ctx context.Context) ([]UserAdminResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserAdminResponse, error)
	DeactivateUser(ctx context.Context, id string) error
}
