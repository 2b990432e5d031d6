package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medresFront/internal/modules/users/application/port"
	"medresFront/internal/modules/users/application/usecase"
	"medresFront/internal/platform/medres"
)

// UserHandler proxia login, registro y administración de cuentas.
type UserHandler struct {
	accounts *usecase.AccountService
}

func NewUserHandler(accounts *usecase.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

func (h *UserHandler) Register(g *echo.Group) {
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.POST("/registro", h.register)
}

func (h *UserHandler) RegisterAdmin(g *echo.Group) {
	g.GET("/usuarios", h.list)
	g.PUT("/usuarios/:id", h.update)
}

type credentialsBody struct {
	Username string `json:"user_name"`
	Password string `json:"contrasena"`
}

func (h *UserHandler) login(c echo.Context) error {
	var body credentialsBody
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "petición inválida")
	}
	result, err := h.accounts.Login(c.Request().Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingCredentials) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		if msg := medres.RejectionMessage(err); msg != "" {
			return fail(c, http.StatusUnauthorized, msg)
		}
		return fail(c, http.StatusBadGateway, "backend no disponible")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token":   result.Token,
		"id":      result.UserID,
		"usuario": result.Username,
		"idRol":   result.RoleID,
	})
}

func (h *UserHandler) logout(c echo.Context) error {
	h.accounts.Logout()
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) register(c echo.Context) error {
	var body credentialsBody
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "petición inválida")
	}
	user, err := h.accounts.Register(c.Request().Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingCredentials) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		if msg := medres.RejectionMessage(err); msg != "" {
			return fail(c, http.StatusBadGateway, msg)
		}
		return fail(c, http.StatusBadGateway, "backend no disponible")
	}
	return c.JSON(http.StatusCreated, map[string]any{"usuario": user})
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusBadGateway, "backend no disponible")
	}
	return c.JSON(http.StatusOK, map[string]any{"usuarios": users})
}

func (h *UserHandler) update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}
	var input port.UpdateInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "petición inválida")
	}
	updated, err := h.accounts.UpdateAccount(c.Request().Context(), id, input)
	if err != nil {
		if msg := medres.RejectionMessage(err); msg != "" {
			return fail(c, http.StatusBadGateway, msg)
		}
		return fail(c, http.StatusBadGateway, "backend no disponible")
	}
	return c.JSON(http.StatusOK, map[string]any{"usuario": updated})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"error": message})
}
