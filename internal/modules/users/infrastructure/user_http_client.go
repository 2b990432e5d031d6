package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"medresFront/internal/modules/users/application/port"
	"medresFront/internal/modules/users/domain"
	"medresFront/internal/platform/medres"
)

// UserHTTPClient proxies the backend user endpoints.
type UserHTTPClient struct {
	api *medres.Client
}

func NewUserHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *UserHTTPClient {
	return &UserHTTPClient{api: medres.NewClient(baseURL, timeout, client)}
}

func (c *UserHTTPClient) Login(ctx context.Context, credentials port.Credentials) (*domain.LoginResult, error) {
	payload, err := c.api.Do(ctx, http.MethodPost, "/usuarios/login", "", credentials)
	if err != nil {
		return nil, err
	}
	result, ok := domain.BuildLoginResult(payload)
	if !ok {
		return nil, fmt.Errorf("login: %w", medres.ErrTransport)
	}
	return result, nil
}

func (c *UserHTTPClient) Register(ctx context.Context, input port.RegisterInput) (*domain.User, error) {
	payload, err := c.api.Do(ctx, http.MethodPost, "/usuarios/", "", input)
	if err != nil {
		return nil, err
	}
	user, ok := userDetail(payload)
	if !ok {
		return nil, fmt.Errorf("register: %w", medres.ErrTransport)
	}
	return user, nil
}

func (c *UserHTTPClient) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	payload, err := c.api.Do(ctx, http.MethodGet, "/usuarios", token, nil)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildUserList(payload)
	if !ok {
		return []domain.User{}, nil
	}
	return list.Items, nil
}

// UpdateUser sends the edited user to the backend. The endpoint takes the
// whole user in the body, id included, without an id path segment.
func (c *UserHTTPClient) UpdateUser(ctx context.Context, token string, id int, input port.UpdateInput) (*domain.User, error) {
	body := struct {
		ID int `json:"id"`
		port.UpdateInput
	}{ID: id, UpdateInput: input}
	payload, err := c.api.Do(ctx, http.MethodPut, "/usuarios", token, body)
	if err != nil {
		return nil, err
	}
	user, ok := userDetail(payload)
	if !ok {
		return nil, fmt.Errorf("usuario %d: %w", id, medres.ErrTransport)
	}
	return user, nil
}

func userDetail(payload any) (*domain.User, bool) {
	list, ok := domain.BuildUserList(payload)
	if !ok || len(list.Items) == 0 {
		return nil, false
	}
	user := list.Items[0]
	return &user, true
}

var _ port.UserGateway = (*UserHTTPClient)(nil)
