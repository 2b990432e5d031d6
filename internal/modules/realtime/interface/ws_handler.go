package transport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"medresFront/internal/modules/realtime/domain"
	"medresFront/internal/modules/realtime/infrastructure"
	"medresFront/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewCalendarStreamHandler expone /ws/calendario: valida el JWT (solo
// administradores), abre la conexión y suscribe al tópico del calendario.
func NewCalendarStreamHandler(hub *infrastructure.Hub, validator *auth.JWTValidator, sendBuffer int) func(echo.Context) error {
	return func(c echo.Context) error {
		token := auth.ExtractToken(c.Request(), "token")
		if token == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing token")
		}
		claims, err := validator.Validate(token)
		if err != nil {
			slog.Warn("ws calendario token invalido", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if !claims.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Warn("ws calendario upgrade failed", slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, strconv.Itoa(claims.UserID), uuid.NewString(), sendBuffer)
		hub.AttachClient(client, []string{domain.CalendarTopic})
		go client.WritePump()
		go client.ReadPump()
		return nil
	}
}
