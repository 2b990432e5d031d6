package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	catalog "medresFront/internal/modules/catalog/domain"
	"medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/modules/reservations/application/usecase"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/platform/medres"
	"medresFront/internal/shared/auth"
)

// WizardHandler expone el flujo de reserva del huésped sobre HTTP. Cada
// sesión del asistente vive en el store y se referencia por su id.
type WizardHandler struct {
	store     *usecase.WizardStore
	directory port.RoomTypeDirectory
	creator   port.ReservationCreator
	session   *auth.Session
}

func NewWizardHandler(store *usecase.WizardStore, directory port.RoomTypeDirectory, creator port.ReservationCreator, session *auth.Session) *WizardHandler {
	return &WizardHandler{store: store, directory: directory, creator: creator, session: session}
}

func (h *WizardHandler) Register(g *echo.Group) {
	g.POST("", h.start)
	g.GET("/:id", h.state)
	g.POST("/:id/tipo-habitacion", h.selectRoomType)
	g.POST("/:id/fechas", h.setDates)
	g.POST("/:id/huesped", h.setGuests)
	g.POST("/:id/siguiente", h.next)
	g.POST("/:id/anterior", h.prev)
	g.POST("/:id/confirmar", h.confirm)
	g.POST("/:id/reintentar", h.retry)
	g.POST("/:id/reiniciar", h.reset)
}

func (h *WizardHandler) start(c echo.Context) error {
	w, err := usecase.NewWizard(c.Request().Context(), h.directory, h.creator, h.session.UserID())
	if err != nil {
		slog.Warn("wizard start failed", slog.Any("error", err))
		return banner(c, http.StatusBadGateway, "No se pudieron cargar los tipos de habitación")
	}
	h.store.Put(w)
	return c.JSON(http.StatusCreated, viewPayload(w.Snapshot()))
}

func (h *WizardHandler) state(c echo.Context) error {
	w, err := h.store.Get(c.Param("id"))
	if err != nil {
		return banner(c, http.StatusNotFound, "Sesión de reserva no encontrada")
	}
	return c.JSON(http.StatusOK, viewPayload(w.Snapshot()))
}

func (h *WizardHandler) selectRoomType(c echo.Context) error {
	var body struct {
		RoomTypeID int `json:"tipoHabitacion"`
	}
	w, err := h.bind(c, &body)
	if err != nil {
		return err
	}
	return h.respond(c, w, w.SelectRoomType(body.RoomTypeID))
}

func (h *WizardHandler) setDates(c echo.Context) error {
	var body struct {
		CheckIn  string `json:"fechaIngreso"`
		CheckOut string `json:"fechaSalida"`
	}
	w, err := h.bind(c, &body)
	if err != nil {
		return err
	}
	checkIn, err := domain.ParseWireDate(body.CheckIn)
	if err != nil {
		return banner(c, http.StatusBadRequest, "fechaIngreso inválida")
	}
	checkOut, err := domain.ParseWireDate(body.CheckOut)
	if err != nil {
		return banner(c, http.StatusBadRequest, "fechaSalida inválida")
	}
	return h.respond(c, w, w.SetDates(checkIn, checkOut))
}

func (h *WizardHandler) setGuests(c echo.Context) error {
	var body struct {
		Adults    int    `json:"adultos"`
		Children  int    `json:"niños"`
		DNI       string `json:"dniHuesped"`
		FirstName string `json:"nombre"`
		LastName  string `json:"apellido"`
		Phone     string `json:"telefono"`
	}
	w, err := h.bind(c, &body)
	if err != nil {
		return err
	}
	return h.respond(c, w, w.SetGuests(body.Adults, body.Children, body.DNI, body.FirstName, body.LastName, body.Phone))
}

func (h *WizardHandler) next(c echo.Context) error {
	w, err := h.lookup(c)
	if err != nil {
		return err
	}
	return h.respond(c, w, w.Next(c.Request().Context()))
}

func (h *WizardHandler) prev(c echo.Context) error {
	w, err := h.lookup(c)
	if err != nil {
		return err
	}
	return h.respond(c, w, w.Prev())
}

func (h *WizardHandler) confirm(c echo.Context) error {
	w, err := h.lookup(c)
	if err != nil {
		return err
	}
	return h.respond(c, w, w.Confirm(c.Request().Context()))
}

func (h *WizardHandler) retry(c echo.Context) error {
	w, err := h.lookup(c)
	if err != nil {
		return err
	}
	return h.respond(c, w, w.Retry(c.Request().Context()))
}

func (h *WizardHandler) reset(c echo.Context) error {
	w, err := h.lookup(c)
	if err != nil {
		return err
	}
	w.Reset()
	return c.JSON(http.StatusOK, viewPayload(w.Snapshot()))
}

func (h *WizardHandler) lookup(c echo.Context) (*usecase.Wizard, error) {
	w, err := h.store.Get(c.Param("id"))
	if err != nil {
		return nil, banner(c, http.StatusNotFound, "Sesión de reserva no encontrada")
	}
	return w, nil
}

func (h *WizardHandler) bind(c echo.Context, body any) (*usecase.Wizard, error) {
	w, err := h.lookup(c)
	if err != nil {
		return nil, err
	}
	if err := c.Bind(body); err != nil {
		return nil, banner(c, http.StatusBadRequest, "cuerpo de la petición inválido")
	}
	return w, nil
}

// respond devuelve siempre la vista del asistente; un error de paso viaja
// como banner junto al estado vigente, igual que el front original.
func (h *WizardHandler) respond(c echo.Context, w *usecase.Wizard, opErr error) error {
	view := w.Snapshot()
	payload := viewPayload(view)
	if opErr == nil {
		return c.JSON(http.StatusOK, payload)
	}

	status := http.StatusUnprocessableEntity
	message := opErr.Error()
	switch {
	case errors.Is(opErr, usecase.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(opErr, usecase.ErrSubmissionInFlight):
		status = http.StatusConflict
		message = "Ya hay un envío en curso"
	case errors.Is(opErr, medres.ErrRejected):
		status = http.StatusBadGateway
		message = view.Failure
	case errors.Is(opErr, medres.ErrTransport):
		status = http.StatusBadGateway
		message = view.Failure
	}
	payload["error"] = message
	return c.JSON(status, payload)
}

func banner(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"error": message})
}

func viewPayload(view usecase.WizardView) map[string]any {
	payload := map[string]any{
		"id":                view.ID,
		"paso":              string(view.State),
		"borrador":          draftPayload(view.Draft),
		"tiposHabitacion":   roomTypesPayload(view.RoomTypes),
		"capacidad":         view.Capacity,
		"capacidadConocida": view.CapacityKnown,
		"precioTotal":       view.Total,
	}
	if view.Failure != "" {
		payload["error"] = view.Failure
	}
	if view.Created != nil {
		payload["reserva"] = view.Created
	}
	return payload
}

func draftPayload(d domain.Draft) map[string]any {
	payload := map[string]any{
		"tipoHabitacion": d.RoomTypeID,
		"adultos":        d.Adults,
		"niños":          d.Children,
		"dniHuesped":     d.DNI,
		"nombre":         d.FirstName,
		"apellido":       d.LastName,
		"telefono":       d.Phone,
	}
	if !d.CheckIn.IsZero() {
		payload["fechaIngreso"] = domain.FormatWireDate(d.CheckIn)
	}
	if !d.CheckOut.IsZero() {
		payload["fechaSalida"] = domain.FormatWireDate(d.CheckOut)
	}
	return payload
}

func roomTypesPayload(roomTypes []catalog.RoomType) []map[string]any {
	out := make([]map[string]any, 0, len(roomTypes))
	for _, rt := range roomTypes {
		out = append(out, map[string]any{
			"id":          rt.ID,
			"nombre":      rt.Name,
			"descripcion": rt.Description,
			"precio":      rt.NightlyRate,
		})
	}
	return out
}
