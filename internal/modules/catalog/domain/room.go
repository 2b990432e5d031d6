package domain

import "medresFront/internal/shared/normalization"

// Room is a physical room owned by the admin back-office. Capacity bounds how
// many guests the wizard accepts for the room's type.
type Room struct {
	ID          int
	Name        string
	RoomTypeID  int
	Description string
	Status      RoomStatus
	Capacity    int
	RoomType    *RoomType
}

// RoomList aggregates rooms with a total for table views.
type RoomList struct {
	Items []Room
	Total int
}

// NormalizeRoom constructs a Room from a loosely typed map. The backend embeds
// the owning room type under "tipohabitacione".
func NormalizeRoom(raw map[string]any) (Room, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return Room{}, false
	}

	room := Room{
		ID:          id,
		Name:        normalization.AsString(raw["nombre"]),
		RoomTypeID:  normalization.AsInt(raw["tipoHabitacion"]),
		Description: normalization.AsString(raw["descripcion"]),
		Status:      NormalizeRoomStatus(raw["estado"]),
		Capacity:    normalization.AsInt(raw["cantidadPersonas"]),
	}

	if nested, ok := raw["tipohabitacione"].(map[string]any); ok {
		if roomType, ok := NormalizeRoomType(nested); ok {
			room.RoomType = &roomType
			if room.RoomTypeID == 0 {
				room.RoomTypeID = roomType.ID
			}
		}
	}

	return room, true
}

// BuildRoomList projects an API payload into a RoomList.
func BuildRoomList(payload any) (*RoomList, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		if container := normalization.MapFromPayload(payload); container != nil {
			rawItems = normalization.AsInterfaceSlice(container["habitaciones"])
		}
	}
	if len(rawItems) == 0 {
		return nil, false
	}

	result := &RoomList{Items: make([]Room, 0, len(rawItems))}
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if room, ok := NormalizeRoom(rawMap); ok {
				result.Items = append(result.Items, room)
			}
		}
	}
	if len(result.Items) == 0 {
		return nil, false
	}
	result.Total = len(result.Items)
	return result, true
}

// BuildRoomDetail extracts a single room from the payload.
func BuildRoomDetail(payload any) (*Room, bool) {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return nil, false
	}
	if nested, ok := container["habitacione"].(map[string]any); ok {
		container = nested
	}
	room, ok := NormalizeRoom(container)
	if !ok {
		return nil, false
	}
	return &room, true
}

// CapacityForRoomType scans rooms for the first one belonging to the given
// room type and returns its capacity. The false return means the capacity is
// unknown, which blocks wizard progression rather than erroring.
func CapacityForRoomType(rooms []Room, roomTypeID int) (int, bool) {
	for _, room := range rooms {
		if room.RoomTypeID == roomTypeID || (room.RoomType != nil && room.RoomType.ID == roomTypeID) {
			return room.Capacity, true
		}
	}
	return 0, false
}
