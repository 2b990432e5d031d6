package domain

import (
	"medresFront/internal/shared/normalization"
)

// User is a backend account projected from the wire.
type User struct {
	ID       int
	Username string
	RoleID   int
}

// LoginResult is the payload the backend answers on a successful login.
type LoginResult struct {
	Token    string
	UserID   int
	Username string
	RoleID   int
}

func NormalizeUser(raw map[string]any) (User, bool) {
	if len(raw) == 0 {
		return User{}, false
	}
	user := User{
		ID:       normalization.AsInt(raw["id"]),
		Username: normalization.AsString(raw["usuario"]),
		RoleID:   normalization.AsInt(raw["idRol"]),
	}
	if user.Username == "" {
		user.Username = normalization.AsString(raw["user_name"])
	}
	if user.ID == 0 && user.Username == "" {
		return User{}, false
	}
	return user, true
}

type UserList struct {
	Items []User
	Total int
}

func BuildUserList(payload any) (*UserList, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		if container := normalization.MapFromPayload(payload); container != nil {
			if nested := normalization.AsInterfaceSlice(container["usuarios"]); len(nested) > 0 {
				rawItems = nested
			} else {
				rawItems = []any{container}
			}
		}
	}
	if len(rawItems) == 0 {
		return nil, false
	}

	result := &UserList{Items: make([]User, 0, len(rawItems))}
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if user, ok := NormalizeUser(rawMap); ok {
				result.Items = append(result.Items, user)
			}
		}
	}
	if len(result.Items) == 0 {
		return nil, false
	}
	result.Total = len(result.Items)
	return result, true
}

// BuildLoginResult projects the login response. A payload without token is
// not a session.
func BuildLoginResult(payload any) (*LoginResult, bool) {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return nil, false
	}
	result := LoginResult{
		Token:    normalization.AsString(container["token"]),
		UserID:   normalization.AsInt(container["id"]),
		Username: normalization.AsString(container["usuario"]),
		RoleID:   normalization.AsInt(container["idRol"]),
	}
	if result.Token == "" {
		return nil, false
	}
	return &result, true
}
