package booking

import "github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusPending exists in the data model but the booking path never
	// produces it: a validated booking is confirmed immediately.
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusConfirmed
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel allows cancelling a confirmed appointment. An already-cancelled
// one is not an error here; the coordinator treats it as a no-op.
func CanCancel(current Status) error {
	if current != StatusConfirmed && current != StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeConflict)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeConflict)
	}
	return nil
}
