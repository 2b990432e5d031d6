package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"medresFront/internal/modules/catalog/application/port"
	"medresFront/internal/modules/catalog/domain"
	"medresFront/internal/platform/medres"
)

// CatalogHTTPClient proxies the backend room-type and room endpoints and
// projects the duck-typed payloads into catalog records.
type CatalogHTTPClient struct {
	api *medres.Client
}

func NewCatalogHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *CatalogHTTPClient {
	return &CatalogHTTPClient{api: medres.NewClient(baseURL, timeout, client)}
}

func (c *CatalogHTTPClient) ListRoomTypes(ctx context.Context, token string) ([]domain.RoomType, error) {
	payload, err := c.api.Do(ctx, http.MethodGet, "/tipohabitaciones", token, nil)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildRoomTypeList(payload)
	if !ok {
		return []domain.RoomType{}, nil
	}
	return list.Items, nil
}

// ActiveRoomTypes uses the dedicated backend listing so inactive types never
// leave the backend.
func (c *CatalogHTTPClient) ActiveRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	payload, err := c.api.Do(ctx, http.MethodGet, "/tipohabitaciones/estado/activas", "", nil)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildRoomTypeList(payload)
	if !ok {
		return []domain.RoomType{}, nil
	}
	return list.Items, nil
}

func (c *CatalogHTTPClient) CreateRoomType(ctx context.Context, token string, input port.RoomTypeInput) (*domain.RoomType, error) {
	payload, err := c.api.Do(ctx, http.MethodPost, "/tipohabitaciones", token, input)
	if err != nil {
		slog.Warn("tipo de habitacion create failed", slog.String("nombre", input.Name), slog.Any("error", err))
		return nil, err
	}
	return roomTypeDetail(payload)
}

func (c *CatalogHTTPClient) UpdateRoomType(ctx context.Context, token string, id int, input port.RoomTypeInput) (*domain.RoomType, error) {
	payload, err := c.api.Do(ctx, http.MethodPut, "/tipohabitaciones/"+strconv.Itoa(id), token, input)
	if err != nil {
		slog.Warn("tipo de habitacion update failed", slog.Int("id", id), slog.Any("error", err))
		return nil, err
	}
	return roomTypeDetail(payload)
}

func (c *CatalogHTTPClient) DeleteRoomType(ctx context.Context, token string, id int) error {
	_, err := c.api.Do(ctx, http.MethodDelete, "/tipohabitaciones/"+strconv.Itoa(id), token, nil)
	return err
}

func (c *CatalogHTTPClient) ListRooms(ctx context.Context, token string) ([]domain.Room, error) {
	payload, err := c.api.Do(ctx, http.MethodGet, "/habitaciones", token, nil)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildRoomList(payload)
	if !ok {
		return []domain.Room{}, nil
	}
	return list.Items, nil
}

func (c *CatalogHTTPClient) CreateRoom(ctx context.Context, token string, input port.RoomInput) (*domain.Room, error) {
	payload, err := c.api.Do(ctx, http.MethodPost, "/habitaciones", token, input)
	if err != nil {
		slog.Warn("habitacion create failed", slog.String("nombre", input.Name), slog.Any("error", err))
		return nil, err
	}
	return roomDetail(payload)
}

func (c *CatalogHTTPClient) UpdateRoom(ctx context.Context, token string, id int, input port.RoomInput) (*domain.Room, error) {
	payload, err := c.api.Do(ctx, http.MethodPut, "/habitaciones/"+strconv.Itoa(id), token, input)
	if err != nil {
		slog.Warn("habitacion update failed", slog.Int("id", id), slog.Any("error", err))
		return nil, err
	}
	return roomDetail(payload)
}

func (c *CatalogHTTPClient) DeleteRoom(ctx context.Context, token string, id int) error {
	_, err := c.api.Do(ctx, http.MethodDelete, "/habitaciones/"+strconv.Itoa(id), token, nil)
	return err
}

func roomTypeDetail(payload any) (*domain.RoomType, error) {
	detail, ok := domain.BuildRoomTypeDetail(payload)
	if !ok {
		return nil, fmt.Errorf("tipo de habitacion: %w", medres.ErrTransport)
	}
	return detail, nil
}

func roomDetail(payload any) (*domain.Room, error) {
	detail, ok := domain.BuildRoomDetail(payload)
	if !ok {
		return nil, fmt.Errorf("habitacion: %w", medres.ErrTransport)
	}
	return detail, nil
}

var (
	_ port.RoomTypeRepository = (*CatalogHTTPClient)(nil)
	_ port.RoomRepository     = (*CatalogHTTPClient)(nil)
)
