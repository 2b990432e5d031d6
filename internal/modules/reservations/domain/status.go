package domain

import "strings"

// Status is the reservation lifecycle state as exposed by the medres API. The
// wire values are Spanish and kept verbatim.
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "Pendiente"
	StatusConfirmed Status = "Confirmada"
	StatusCancelled Status = "Cancelada"
)

var allowedStatuses = map[string]Status{
	strings.ToLower(string(StatusPending)):   StatusPending,
	strings.ToLower(string(StatusConfirmed)): StatusConfirmed,
	strings.ToLower(string(StatusCancelled)): StatusCancelled,
}

// KnownStatuses lists the canonical lifecycle states in display order.
func KnownStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCancelled}
}

// NormalizeStatus returns the canonical Status for the given input. Unknown
// statuses are carried as-is to avoid data loss.
func NormalizeStatus(value any) Status {
	s, ok := value.(string)
	if !ok {
		return StatusUnknown
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return StatusUnknown
	}
	if status, ok := allowedStatuses[strings.ToLower(trimmed)]; ok {
		return status
	}
	return Status(trimmed)
}
