package domain

import (
	"time"

	"medresFront/internal/shared/normalization"
)

// Reservation is a stored booking as returned by the medres API. Nights and
// TotalPrice are the persisted values; the wizard recomputes both before
// submission and the admin form edits the price independently.
type Reservation struct {
	Number      int
	RoomTypeID  int
	RoomID      int
	CheckIn     time.Time
	CheckOut    time.Time
	Nights      int
	Adults      int
	Children    int
	TotalPrice  float64
	Status      Status
	GuestDNI    int
	FirstName   string
	LastName    string
	Phone       string
	OwnerUserID int
	Room        *ReservedRoom
}

// ReservedRoom is the room record the backend embeds under "habitacione".
type ReservedRoom struct {
	ID         int
	Name       string
	RoomTypeID int
	Capacity   int
}

// ReservationList aggregates reservations for admin views.
type ReservationList struct {
	Items []Reservation
	Total int
}

// NormalizeReservation constructs a Reservation from a loosely typed map.
func NormalizeReservation(raw map[string]any) (Reservation, bool) {
	number := normalization.AsInt(raw["nroReserva"])
	if number == 0 {
		return Reservation{}, false
	}

	reservation := Reservation{
		Number:      number,
		RoomTypeID:  normalization.AsInt(raw["tipoHabitacion"]),
		RoomID:      normalization.AsInt(raw["idHabitaciones"]),
		Nights:      normalization.AsInt(raw["dias"]),
		Adults:      normalization.AsInt(raw["adultos"]),
		Children:    normalization.AsInt(raw["niños"]),
		TotalPrice:  normalization.AsFloat64(raw["precioTotal"]),
		Status:      NormalizeStatus(raw["estado"]),
		GuestDNI:    normalization.AsInt(raw["dniHuesped"]),
		FirstName:   normalization.AsString(raw["nombre"]),
		LastName:    normalization.AsString(raw["apellido"]),
		Phone:       normalization.AsString(raw["telefono"]),
		OwnerUserID: normalization.AsInt(raw["idUsuario"]),
	}

	if checkIn, err := ParseWireDate(normalization.AsString(raw["fechaIngreso"])); err == nil {
		reservation.CheckIn = checkIn
	}
	if checkOut, err := ParseWireDate(normalization.AsString(raw["fechaSalida"])); err == nil {
		reservation.CheckOut = checkOut
	}

	if nested, ok := raw["habitacione"].(map[string]any); ok {
		room := ReservedRoom{
			ID:         normalization.AsInt(nested["id"]),
			Name:       normalization.AsString(nested["nombre"]),
			RoomTypeID: normalization.AsInt(nested["tipoHabitacion"]),
			Capacity:   normalization.AsInt(nested["cantidadPersonas"]),
		}
		reservation.Room = &room
		if reservation.RoomTypeID == 0 {
			reservation.RoomTypeID = room.RoomTypeID
		}
		if reservation.RoomID == 0 {
			reservation.RoomID = room.ID
		}
	}

	return reservation, true
}

// BuildReservationList projects an API payload into a ReservationList. The
// backend may answer with a bare array or a single object.
func BuildReservationList(payload any) (*ReservationList, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		if container := normalization.MapFromPayload(payload); container != nil {
			if nested := normalization.AsInterfaceSlice(container["reservas"]); len(nested) > 0 {
				rawItems = nested
			} else {
				rawItems = []any{container}
			}
		}
	}
	if len(rawItems) == 0 {
		return nil, false
	}

	result := &ReservationList{Items: make([]Reservation, 0, len(rawItems))}
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if reservation, ok := NormalizeReservation(rawMap); ok {
				result.Items = append(result.Items, reservation)
			}
		}
	}
	if len(result.Items) == 0 {
		return nil, false
	}
	result.Total = len(result.Items)
	return result, true
}

// BuildReservationDetail extracts a single reservation from the payload.
func BuildReservationDetail(payload any) (*Reservation, bool) {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return nil, false
	}
	if nested, ok := container["reserva"].(map[string]any); ok {
		container = nested
	}
	reservation, ok := NormalizeReservation(container)
	if !ok {
		return nil, false
	}
	return &reservation, true
}
