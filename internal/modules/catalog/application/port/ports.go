package port

import (
	"context"

	"medresFront/internal/modules/catalog/domain"
)

// RoomTypeInput is the admin create/edit payload for a room type.
type RoomTypeInput struct {
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	NightlyRate float64  `json:"precio"`
	Active      bool     `json:"activa"`
	ImageRefs   []string `json:"imagenes,omitempty"`
}

// RoomInput is the admin create/edit payload for a room.
type RoomInput struct {
	Name        string `json:"nombre"`
	RoomTypeID  int    `json:"tipoHabitacion"`
	Description string `json:"descripcion"`
	Status      string `json:"estado"`
	Capacity    int    `json:"cantidadPersonas"`
}

// RoomTypeRepository proxies the backend room-type endpoints.
type RoomTypeRepository interface {
	ListRoomTypes(ctx context.Context, token string) ([]domain.RoomType, error)
	ActiveRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	CreateRoomType(ctx context.Context, token string, input RoomTypeInput) (*domain.RoomType, error)
	UpdateRoomType(ctx context.Context, token string, id int, input RoomTypeInput) (*domain.RoomType, error)
	DeleteRoomType(ctx context.Context, token string, id int) error
}

// RoomRepository proxies the backend room endpoints.
type RoomRepository interface {
	ListRooms(ctx context.Context, token string) ([]domain.Room, error)
	CreateRoom(ctx context.Context, token string, input RoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, token string, id int, input RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, token string, id int) error
}
