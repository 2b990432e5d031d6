package transport

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/modules/reservations/application/usecase"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/shared/auth"
)

// CalendarHandler proyecta las reservas al calendario del administrador.
type CalendarHandler struct {
	fetcher port.ReservationFetcher
}

func NewCalendarHandler(fetcher port.ReservationFetcher) *CalendarHandler {
	return &CalendarHandler{fetcher: fetcher}
}

func (h *CalendarHandler) Register(g *echo.Group) {
	g.GET("/calendario", h.events)
}

// events devuelve todos los eventos, o solo los que tocan el día pedido
// cuando llega ?dia=YYYY-MM-DD (estadía completa, salida incluida).
func (h *CalendarHandler) events(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request())
	if token == "" {
		return banner(c, http.StatusUnauthorized, "token requerido")
	}

	reservations, err := h.fetcher.ListReservations(c.Request().Context(), token)
	if err != nil {
		return banner(c, http.StatusBadGateway, "backend no disponible")
	}

	events := usecase.ToEvents(reservations)
	if raw := strings.TrimSpace(c.QueryParam("dia")); raw != "" {
		day, err := domain.ParseWireDate(raw)
		if err != nil {
			return banner(c, http.StatusBadRequest, "dia inválido")
		}
		events = usecase.EventsOnDay(events, day)
	}
	return c.JSON(http.StatusOK, map[string]any{"eventos": events})
}
