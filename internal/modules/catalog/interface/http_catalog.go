package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medresFront/internal/modules/catalog/application/port"
	"medresFront/internal/modules/catalog/application/usecase"
	"medresFront/internal/platform/medres"
	"medresFront/internal/shared/auth"
	"medresFront/internal/shared/httputil"
)

// CatalogHandler publica el catálogo: tipos activos para el huésped y el
// CRUD completo para el back-office.
type CatalogHandler struct {
	service *usecase.CatalogService
	errors  *httputil.ErrorMapper
}

func NewCatalogHandler(service *usecase.CatalogService) *CatalogHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(medres.ErrNotFound, http.StatusNotFound, "recurso no encontrado").
		WithMapping(medres.ErrTransport, http.StatusBadGateway, "backend no disponible").
		WithDefault(http.StatusInternalServerError, "error interno")
	return &CatalogHandler{service: service, errors: mapper}
}

func (h *CatalogHandler) RegisterPublic(g *echo.Group) {
	g.GET("/tipos-habitacion", h.activeRoomTypes)
}

func (h *CatalogHandler) RegisterAdmin(g *echo.Group) {
	g.GET("/tipos-habitacion", h.listRoomTypes)
	g.POST("/tipos-habitacion", h.createRoomType)
	g.PUT("/tipos-habitacion/:id", h.updateRoomType)
	g.DELETE("/tipos-habitacion/:id", h.deleteRoomType)
	g.GET("/habitaciones", h.listRooms)
	g.POST("/habitaciones", h.createRoom)
	g.PUT("/habitaciones/:id", h.updateRoom)
	g.DELETE("/habitaciones/:id", h.deleteRoom)
}

func (h *CatalogHandler) activeRoomTypes(c echo.Context) error {
	roomTypes, err := h.service.ActiveRoomTypes(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"tiposHabitacion": roomTypes})
}

func (h *CatalogHandler) listRoomTypes(c echo.Context) error {
	roomTypes, err := h.service.ListRoomTypes(c.Request().Context(), auth.ExtractBearerToken(c.Request()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"tiposHabitacion": roomTypes})
}

func (h *CatalogHandler) createRoomType(c echo.Context) error {
	var input port.RoomTypeInput
	if err := c.Bind(&input); err != nil {
		return h.badRequest(c)
	}
	created, err := h.service.CreateRoomType(c.Request().Context(), auth.ExtractBearerToken(c.Request()), input)
	if err != nil {
		return h.failWithMessage(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"tipoHabitacion": created})
}

func (h *CatalogHandler) updateRoomType(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c)
	}
	var input port.RoomTypeInput
	if err := c.Bind(&input); err != nil {
		return h.badRequest(c)
	}
	updated, err := h.service.UpdateRoomType(c.Request().Context(), auth.ExtractBearerToken(c.Request()), id, input)
	if err != nil {
		return h.failWithMessage(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"tipoHabitacion": updated})
}

func (h *CatalogHandler) deleteRoomType(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c)
	}
	if err := h.service.DeleteRoomType(c.Request().Context(), auth.ExtractBearerToken(c.Request()), id); err != nil {
		return h.failWithMessage(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) listRooms(c echo.Context) error {
	rooms, err := h.service.ListRooms(c.Request().Context(), auth.ExtractBearerToken(c.Request()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"habitaciones": rooms})
}

func (h *CatalogHandler) createRoom(c echo.Context) error {
	var input port.RoomInput
	if err := c.Bind(&input); err != nil {
		return h.badRequest(c)
	}
	created, err := h.service.CreateRoom(c.Request().Context(), auth.ExtractBearerToken(c.Request()), input)
	if err != nil {
		return h.failWithMessage(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"habitacion": created})
}

func (h *CatalogHandler) updateRoom(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c)
	}
	var input port.RoomInput
	if err := c.Bind(&input); err != nil {
		return h.badRequest(c)
	}
	updated, err := h.service.UpdateRoom(c.Request().Context(), auth.ExtractBearerToken(c.Request()), id, input)
	if err != nil {
		return h.failWithMessage(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"habitacion": updated})
}

func (h *CatalogHandler) deleteRoom(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c)
	}
	if err := h.service.DeleteRoom(c.Request().Context(), auth.ExtractBearerToken(c.Request()), id); err != nil {
		return h.failWithMessage(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]any{"error": "petición inválida"})
}

// failWithMessage conserva el mensaje del backend cuando la operación fue
// rechazada; el estado remoto queda intacto y el banner lo dice tal cual.
func (h *CatalogHandler) failWithMessage(c echo.Context, err error) error {
	if msg := medres.RejectionMessage(err); msg != "" {
		return c.JSON(http.StatusBadGateway, map[string]any{"error": msg})
	}
	return h.fail(c, err)
}

func (h *CatalogHandler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	return c.JSON(info.Status, map[string]any{"error": info.Message})
}
