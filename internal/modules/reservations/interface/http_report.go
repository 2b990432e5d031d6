package transport

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/modules/reservations/application/usecase"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/modules/reservations/infrastructure"
	"medresFront/internal/platform/medres"
	"medresFront/internal/shared/auth"
	"medresFront/internal/shared/httputil"
)

const defaultPageSize = 6

// ReportHandler sirve el reporte de reservas del administrador en JSON o PDF.
type ReportHandler struct {
	fetcher port.ReservationFetcher
	errors  *httputil.ErrorMapper
	now     func() time.Time
}

func NewReportHandler(fetcher port.ReservationFetcher) *ReportHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(medres.ErrNotFound, http.StatusNotFound, "reservas no encontradas").
		WithMapping(medres.ErrRejected, http.StatusBadGateway, "el backend rechazó la consulta").
		WithMapping(medres.ErrTransport, http.StatusBadGateway, "backend no disponible").
		WithDefault(http.StatusInternalServerError, "error interno")
	return &ReportHandler{fetcher: fetcher, errors: mapper, now: time.Now}
}

func (h *ReportHandler) Register(g *echo.Group) {
	g.GET("/reporte", h.report)
}

func (h *ReportHandler) report(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request())
	if token == "" {
		return banner(c, http.StatusUnauthorized, "token requerido")
	}

	reservations, err := h.fetcher.ListReservations(c.Request().Context(), token)
	if err != nil {
		info := h.errors.Map(err)
		return banner(c, info.Status, info.Message)
	}

	fs, ref := h.filterSet(c)
	subset := usecase.Filter(reservations, fs)
	ordered := usecase.Sort(subset, usecase.SortKey(c.QueryParam("orden")), sortDirection(c.QueryParam("direccion")))

	totals := usecase.Totals(subset)
	occupancy := usecase.OccupancyRate(subset)
	byStatus := usecase.ByStatus(subset)
	buckets := usecase.ByPeriod(subset, fs.Period, ref, fs.From, fs.To)

	if strings.EqualFold(c.QueryParam("formato"), "pdf") {
		doc := infrastructure.ReportDocument{
			Filters:      fs,
			Reservations: ordered,
			Totals:       totals,
			Occupancy:    occupancy,
			ByStatus:     byStatus,
			GeneratedAt:  h.now(),
		}
		c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
		c.Response().WriteHeader(http.StatusOK)
		return doc.Render(c.Response())
	}

	page := queryInt(c, "pagina", 1)
	pageSize := queryInt(c, "porPagina", defaultPageSize)
	return c.JSON(http.StatusOK, map[string]any{
		"reservas":          usecase.Paginate(ordered, pageSize, page),
		"totales":           totals,
		"ocupacion":         occupancy,
		"porEstado":         byStatus,
		"porPeriodo":        buckets,
		"totalFiltradas":    len(subset),
		"pagina":            page,
		"reservasPorPagina": pageSize,
	})
}

func (h *ReportHandler) filterSet(c echo.Context) (usecase.FilterSet, time.Time) {
	fs := usecase.FilterSet{
		Name:   c.QueryParam("nombre"),
		Period: usecase.HistogramPeriod(strings.ToLower(strings.TrimSpace(c.QueryParam("periodo")))),
	}
	if fs.Period == "" {
		fs.Period = usecase.PeriodYear
	}
	for _, raw := range strings.Split(c.QueryParam("estados"), ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			fs.Statuses = append(fs.Statuses, domain.NormalizeStatus(trimmed))
		}
	}
	if from, err := domain.ParseWireDate(c.QueryParam("desde")); err == nil {
		fs.From = from
	}
	if to, err := domain.ParseWireDate(c.QueryParam("hasta")); err == nil {
		fs.To = to
	}
	return fs, h.now()
}

func sortDirection(value string) usecase.SortDirection {
	if strings.EqualFold(strings.TrimSpace(value), string(usecase.Descending)) {
		return usecase.Descending
	}
	return usecase.Ascending
}

func queryInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
