package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"medresFront/internal/modules/users/application/port"
	"medresFront/internal/modules/users/domain"
	"medresFront/internal/shared/auth"
)

var ErrMissingCredentials = errors.New("usuario y contrasena son obligatorios")

// AccountService owns the gateway session: a successful login installs the
// identity, a profile edit forces re-login.
type AccountService struct {
	gateway port.UserGateway
	session *auth.Session
}

func NewAccountService(gateway port.UserGateway, session *auth.Session) *AccountService {
	return &AccountService{gateway: gateway, session: session}
}

func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	result, err := s.gateway.Login(ctx, port.Credentials{Username: username, Password: password})
	if err != nil {
		slog.Warn("login rechazado", slog.String("usuario", username), slog.Any("error", err))
		return nil, err
	}
	s.session.Login(result.Token, result.UserID, result.RoleID, result.Username)
	slog.Info("login", slog.String("usuario", result.Username), slog.Int("idRol", result.RoleID))
	return result, nil
}

func (s *AccountService) Logout() {
	s.session.Logout()
}

func (s *AccountService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	return s.gateway.Register(ctx, port.RegisterInput{Username: username, Password: password, RoleID: auth.RoleGuest})
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.gateway.ListUsers(ctx, s.session.Token())
}

// UpdateAccount edits the logged account and invalidates the session token,
// matching the backend which rotates credentials on profile changes.
func (s *AccountService) UpdateAccount(ctx context.Context, id int, input port.UpdateInput) (*domain.User, error) {
	updated, err := s.gateway.UpdateUser(ctx, s.session.Token(), id, input)
	if err != nil {
		return nil, err
	}
	if id == s.session.UserID() {
		s.session.Logout()
	}
	return updated, nil
}

func (s *AccountService) Session() *auth.Session {
	return s.session
}
