package port

import (
	"context"

	catalog "medresFront/internal/modules/catalog/domain"
	"medresFront/internal/modules/reservations/domain"
)

// RoomTypeDirectory resolves the catalog data the wizard needs: the guest-
// visible room types (with their rates) and the capacity bound for a type.
// RoomTypeCapacity returns (0, nil) when no room of that type is known yet;
// the wizard treats that as "unknown" and blocks progression instead of
// erroring.
type RoomTypeDirectory interface {
	ActiveRoomTypes(ctx context.Context) ([]catalog.RoomType, error)
	RoomTypeCapacity(ctx context.Context, roomTypeID int) (int, error)
}

// ReservationCreator submits a frozen draft to the backend.
type ReservationCreator interface {
	Create(ctx context.Context, req domain.CreateReservationRequest) (*domain.Reservation, error)
}

// ReservationFetcher lists stored reservations for the admin views and the
// guest "my reservations" page. The bearer token identifies the caller to
// the backend.
type ReservationFetcher interface {
	ListReservations(ctx context.Context, token string) ([]domain.Reservation, error)
	ReservationsByUser(ctx context.Context, token string) ([]domain.Reservation, error)
}

// ReservationWriter applies admin mutations. Update sends only the changed
// fields; the backend applies partial updates.
type ReservationWriter interface {
	Update(ctx context.Context, token string, number int, changes map[string]any) (*domain.Reservation, error)
	Delete(ctx context.Context, token string, number int) error
}
