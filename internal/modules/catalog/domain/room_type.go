package domain

import "medresFront/internal/shared/normalization"

// RoomType is a bookable room category with its nightly rate. active gates
// visibility to guests; rate edits never touch previously stored reservation
// totals.
type RoomType struct {
	ID          int
	Name        string
	Description string
	NightlyRate float64
	Active      bool
	ImageRefs   []string
}

// RoomTypeList aggregates room types with a total for table views.
type RoomTypeList struct {
	Items []RoomType
	Total int
}

// NormalizeRoomType constructs a RoomType from a loosely typed map.
func NormalizeRoomType(raw map[string]any) (RoomType, bool) {
	id := normalization.AsInt(raw["id"])
	if id == 0 {
		return RoomType{}, false
	}

	roomType := RoomType{
		ID:          id,
		Name:        normalization.AsString(raw["nombre"]),
		Description: normalization.AsString(raw["descripcion"]),
		NightlyRate: normalization.AsFloat64(raw["precio"]),
	}

	active := raw["activa"]
	if active == nil {
		active = raw["estado"]
	}
	roomType.Active = normalization.AsBool(active)

	for _, item := range normalization.AsInterfaceSlice(raw["imagenes"]) {
		if ref := normalization.AsString(item); ref != "" {
			roomType.ImageRefs = append(roomType.ImageRefs, ref)
		}
	}

	return roomType, true
}

// BuildRoomTypeList projects an API payload into a RoomTypeList. The backend
// answers with a bare array; enveloped forms are unwrapped too.
func BuildRoomTypeList(payload any) (*RoomTypeList, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		if container := normalization.MapFromPayload(payload); container != nil {
			rawItems = normalization.AsInterfaceSlice(container["tipohabitaciones"])
		}
	}
	if len(rawItems) == 0 {
		return nil, false
	}

	result := &RoomTypeList{Items: make([]RoomType, 0, len(rawItems))}
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if roomType, ok := NormalizeRoomType(rawMap); ok {
				result.Items = append(result.Items, roomType)
			}
		}
	}
	if len(result.Items) == 0 {
		return nil, false
	}
	result.Total = len(result.Items)
	return result, true
}

// BuildRoomTypeDetail extracts a single room type from the payload.
func BuildRoomTypeDetail(payload any) (*RoomType, bool) {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return nil, false
	}
	if nested, ok := container["tipohabitacione"].(map[string]any); ok {
		container = nested
	}
	roomType, ok := NormalizeRoomType(container)
	if !ok {
		return nil, false
	}
	return &roomType, true
}
