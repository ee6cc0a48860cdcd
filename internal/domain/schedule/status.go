package schedule

import "github.com/barbereasy/barbereasy-api/internal/apperr"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return apperr.Conflict("invalid_state", "Agendamento já está cancelado.")
	}
	return nil
}
