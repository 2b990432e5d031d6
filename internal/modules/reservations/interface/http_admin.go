package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/platform/medres"
	"medresFront/internal/shared/auth"
	"medresFront/internal/shared/httputil"
)

// AdminReservationHandler proxia el CRUD de reservas del back-office. Las
// ediciones viajan como diff parcial: solo los campos que cambiaron.
type AdminReservationHandler struct {
	fetcher port.ReservationFetcher
	writer  port.ReservationWriter
	errors  *httputil.ErrorMapper
}

func NewAdminReservationHandler(fetcher port.ReservationFetcher, writer port.ReservationWriter) *AdminReservationHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(medres.ErrNotFound, http.StatusNotFound, "reserva no encontrada").
		WithMapping(medres.ErrTransport, http.StatusBadGateway, "backend no disponible").
		WithDefault(http.StatusInternalServerError, "error interno")
	return &AdminReservationHandler{fetcher: fetcher, writer: writer, errors: mapper}
}

func (h *AdminReservationHandler) Register(g *echo.Group) {
	g.GET("/reservas", h.list)
	g.PUT("/reservas/:nro", h.update)
	g.DELETE("/reservas/:nro", h.remove)
}

// RegisterGuest publica la vista "mis reservas" del huésped autenticado.
func (h *AdminReservationHandler) RegisterGuest(g *echo.Group) {
	g.GET("/mis-reservas", h.mine)
}

func (h *AdminReservationHandler) list(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request())
	if token == "" {
		return banner(c, http.StatusUnauthorized, "token requerido")
	}
	reservations, err := h.fetcher.ListReservations(c.Request().Context(), token)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"reservas": reservations})
}

func (h *AdminReservationHandler) mine(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request())
	if token == "" {
		return banner(c, http.StatusUnauthorized, "token requerido")
	}
	reservations, err := h.fetcher.ReservationsByUser(c.Request().Context(), token)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"reservas": reservations})
}

type adminEditBody struct {
	RoomTypeID int     `json:"tipoHabitacion"`
	CheckIn    string  `json:"fechaIngreso"`
	CheckOut   string  `json:"fechaSalida"`
	Adults     int     `json:"adultos"`
	Children   int     `json:"niños"`
	TotalPrice float64 `json:"precioTotal"`
	Status     string  `json:"estado"`
	GuestDNI   int     `json:"dniHuesped"`
	FirstName  string  `json:"nombre"`
	LastName   string  `json:"apellido"`
	Phone      string  `json:"telefono"`
}

// update busca la reserva vigente, calcula el diff contra el formulario y
// envía solo lo cambiado. Un formulario idéntico no toca el backend.
func (h *AdminReservationHandler) update(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request())
	if token == "" {
		return banner(c, http.StatusUnauthorized, "token requerido")
	}
	number, err := strconv.Atoi(c.Param("nro"))
	if err != nil {
		return banner(c, http.StatusBadRequest, "nroReserva inválido")
	}
	var body adminEditBody
	if err := c.Bind(&body); err != nil {
		return banner(c, http.StatusBadRequest, "cuerpo de la petición inválido")
	}

	current, err := h.find(c, token, number)
	if err != nil {
		return h.fail(c, err)
	}
	if current == nil {
		return banner(c, http.StatusNotFound, "reserva no encontrada")
	}

	edit, err := body.toEdit()
	if err != nil {
		return banner(c, http.StatusBadRequest, err.Error())
	}
	changes := edit.ChangedFields(*current)
	if len(changes) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"reserva": current})
	}

	updated, err := h.writer.Update(c.Request().Context(), token, number, changes)
	if err != nil {
		if msg := medres.RejectionMessage(err); msg != "" {
			return banner(c, http.StatusBadGateway, msg)
		}
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"reserva": updated})
}

func (h *AdminReservationHandler) remove(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request())
	if token == "" {
		return banner(c, http.StatusUnauthorized, "token requerido")
	}
	number, err := strconv.Atoi(c.Param("nro"))
	if err != nil {
		return banner(c, http.StatusBadRequest, "nroReserva inválido")
	}
	if err := h.writer.Delete(c.Request().Context(), token, number); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminReservationHandler) find(c echo.Context, token string, number int) (*domain.Reservation, error) {
	reservations, err := h.fetcher.ListReservations(c.Request().Context(), token)
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		if reservations[i].Number == number {
			return &reservations[i], nil
		}
	}
	return nil, nil
}

func (h *AdminReservationHandler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	return banner(c, info.Status, info.Message)
}

func (b adminEditBody) toEdit() (domain.AdminEdit, error) {
	checkIn, err := domain.ParseWireDate(b.CheckIn)
	if err != nil {
		return domain.AdminEdit{}, err
	}
	checkOut, err := domain.ParseWireDate(b.CheckOut)
	if err != nil {
		return domain.AdminEdit{}, err
	}
	if _, err := domain.NightsBetween(checkIn, checkOut); err != nil {
		return domain.AdminEdit{}, err
	}
	return domain.AdminEdit{
		RoomTypeID: b.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     b.Adults,
		Children:   b.Children,
		TotalPrice: b.TotalPrice,
		Status:     domain.NormalizeStatus(b.Status),
		GuestDNI:   b.GuestDNI,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Phone:      b.Phone,
	}, nil
}
