package usecase

import (
	"context"
	"errors"
	"log/slog"

	"medresFront/internal/modules/catalog/application/port"
	"medresFront/internal/modules/catalog/domain"
	reservationport "medresFront/internal/modules/reservations/application/port"
	"medresFront/internal/platform/medres"
)

// CatalogService exposes the room-type and room catalog to the guest and
// admin surfaces. Guest listings only see active room types.
type CatalogService struct {
	roomTypes port.RoomTypeRepository
	rooms     port.RoomRepository
}

func NewCatalogService(roomTypes port.RoomTypeRepository, rooms port.RoomRepository) *CatalogService {
	return &CatalogService{roomTypes: roomTypes, rooms: rooms}
}

func (s *CatalogService) ListRoomTypes(ctx context.Context, token string) ([]domain.RoomType, error) {
	return s.roomTypes.ListRoomTypes(ctx, token)
}

// ActiveRoomTypes lists what guests may book, via the backend's dedicated
// active-only endpoint.
func (s *CatalogService) ActiveRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypes.ActiveRoomTypes(ctx)
}

// RoomTypeCapacity resolves the guest cap for a room type by scanning the
// rooms of that type. (0, nil) means no room of the type is known yet; the
// booking flow treats that as unresolved, not as an error.
func (s *CatalogService) RoomTypeCapacity(ctx context.Context, roomTypeID int) (int, error) {
	rooms, err := s.rooms.ListRooms(ctx, "")
	if err != nil {
		if errors.Is(err, medres.ErrNotFound) {
			return 0, nil
		}
		slog.Warn("capacidad no resuelta", slog.Int("tipoHabitacion", roomTypeID), slog.Any("error", err))
		return 0, err
	}
	capacity, ok := domain.CapacityForRoomType(rooms, roomTypeID)
	if !ok {
		return 0, nil
	}
	return capacity, nil
}

func (s *CatalogService) CreateRoomType(ctx context.Context, token string, input port.RoomTypeInput) (*domain.RoomType, error) {
	return s.roomTypes.CreateRoomType(ctx, token, input)
}

func (s *CatalogService) UpdateRoomType(ctx context.Context, token string, id int, input port.RoomTypeInput) (*domain.RoomType, error) {
	return s.roomTypes.UpdateRoomType(ctx, token, id, input)
}

func (s *CatalogService) DeleteRoomType(ctx context.Context, token string, id int) error {
	return s.roomTypes.DeleteRoomType(ctx, token, id)
}

func (s *CatalogService) ListRooms(ctx context.Context, token string) ([]domain.Room, error) {
	return s.rooms.ListRooms(ctx, token)
}

func (s *CatalogService) CreateRoom(ctx context.Context, token string, input port.RoomInput) (*domain.Room, error) {
	return s.rooms.CreateRoom(ctx, token, input)
}

func (s *CatalogService) UpdateRoom(ctx context.Context, token string, id int, input port.RoomInput) (*domain.Room, error) {
	return s.rooms.UpdateRoom(ctx, token, id, input)
}

func (s *CatalogService) DeleteRoom(ctx context.Context, token string, id int) error {
	return s.rooms.DeleteRoom(ctx, token, id)
}

var _ reservationport.RoomTypeDirectory = (*CatalogService)(nil)
