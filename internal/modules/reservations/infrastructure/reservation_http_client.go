package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/modules/reservations/domain"
	"medresFront/internal/platform/medres"
)

// ReservationHTTPClient talks to the backend reservation endpoints and
// returns normalized domain records.
type ReservationHTTPClient struct {
	api *medres.Client
}

func NewReservationHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *ReservationHTTPClient {
	return &ReservationHTTPClient{api: medres.NewClient(baseURL, timeout, client)}
}

func (c *ReservationHTTPClient) Create(ctx context.Context, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	slog.Info("reserva create start", slog.Int("tipoHabitacion", req.RoomTypeID), slog.String("fechaIngreso", req.CheckIn))
	payload, err := c.api.Do(ctx, http.MethodPost, "/reservas", "", req)
	if err != nil {
		slog.Warn("reserva create failed", slog.Any("error", err))
		return nil, err
	}
	created, ok := domain.BuildReservationDetail(payload)
	if !ok {
		// El backend confirma sin cuerpo en algunas versiones; la reserva
		// existe aunque no podamos proyectarla.
		slog.Warn("reserva create response sin detalle")
		return &domain.Reservation{}, nil
	}
	slog.Info("reserva create done", slog.Int("nroReserva", created.Number))
	return created, nil
}

func (c *ReservationHTTPClient) ListReservations(ctx context.Context, token string) ([]domain.Reservation, error) {
	payload, err := c.api.Do(ctx, http.MethodGet, "/reservas", token, nil)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildReservationList(payload)
	if !ok {
		return []domain.Reservation{}, nil
	}
	return list.Items, nil
}

func (c *ReservationHTTPClient) ReservationsByUser(ctx context.Context, token string) ([]domain.Reservation, error) {
	payload, err := c.api.Do(ctx, http.MethodGet, "/reservas/get/by/user", token, nil)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildReservationList(payload)
	if !ok {
		return []domain.Reservation{}, nil
	}
	return list.Items, nil
}

// Update applies an admin partial edit. Only the changed fields travel;
// an empty change set skips the round trip and re-reads nothing.
func (c *ReservationHTTPClient) Update(ctx context.Context, token string, number int, changes map[string]any) (*domain.Reservation, error) {
	if len(changes) == 0 {
		return nil, nil
	}
	payload, err := c.api.Do(ctx, http.MethodPut, "/reservas/"+strconv.Itoa(number), token, changes)
	if err != nil {
		slog.Warn("reserva update failed", slog.Int("nroReserva", number), slog.Any("error", err))
		return nil, err
	}
	updated, ok := domain.BuildReservationDetail(payload)
	if !ok {
		return nil, fmt.Errorf("reserva %d: %w", number, medres.ErrTransport)
	}
	return updated, nil
}

func (c *ReservationHTTPClient) Delete(ctx context.Context, token string, number int) error {
	_, err := c.api.Do(ctx, http.MethodDelete, "/reservas/"+strconv.Itoa(number), token, nil)
	if err != nil {
		slog.Warn("reserva delete failed", slog.Int("nroReserva", number), slog.Any("error", err))
		return err
	}
	slog.Info("reserva delete done", slog.Int("nroReserva", number))
	return nil
}

var (
	_ port.ReservationCreator = (*ReservationHTTPClient)(nil)
	_ port.ReservationFetcher = (*ReservationHTTPClient)(nil)
	_ port.ReservationWriter  = (*ReservationHTTPClient)(nil)
)
