package domain

import "strings"

// RoomStatus is the administrative state of a physical room. It is a plain
// enumerated field: nothing derives it from the reservation calendar.
type RoomStatus string

const (
	RoomStatusUnknown     RoomStatus = ""
	RoomStatusAvailable   RoomStatus = "Disponible"
	RoomStatusOccupied    RoomStatus = "Ocupada"
	RoomStatusMaintenance RoomStatus = "Mantenimiento"
)

var allowedRoomStatuses = map[string]RoomStatus{
	strings.ToLower(string(RoomStatusAvailable)):   RoomStatusAvailable,
	strings.ToLower(string(RoomStatusOccupied)):    RoomStatusOccupied,
	strings.ToLower(string(RoomStatusMaintenance)): RoomStatusMaintenance,
}

// NormalizeRoomStatus returns the canonical RoomStatus for the given input.
// Unknown statuses are carried as-is to avoid data loss.
func NormalizeRoomStatus(value any) RoomStatus {
	s, ok := value.(string)
	if !ok {
		return RoomStatusUnknown
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return RoomStatusUnknown
	}
	if status, ok := allowedRoomStatuses[strings.ToLower(trimmed)]; ok {
		return status
	}
	return RoomStatus(trimmed)
}
