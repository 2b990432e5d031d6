package port

import (
	"context"

	"medresFront/internal/modules/users/domain"
)

// Credentials is the login payload in the backend's wire vocabulary.
type Credentials struct {
	Username string `json:"user_name"`
	Password string `json:"contrasena"`
}

// RegisterInput creates a new guest account.
type RegisterInput struct {
	Username string `json:"user_name"`
	Password string `json:"contrasena"`
	RoleID   int    `json:"idRol,omitempty"`
}

// UpdateInput edits an account; zero fields are omitted from the wire.
type UpdateInput struct {
	Username string `json:"user_name,omitempty"`
	Password string `json:"contrasena,omitempty"`
	RoleID   int    `json:"idRol,omitempty"`
}

// UserGateway proxies the backend user endpoints.
type UserGateway interface {
	Login(ctx context.Context, credentials Credentials) (*domain.LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	UpdateUser(ctx context.Context, token string, id int, input UpdateInput) (*domain.User, error)
}
