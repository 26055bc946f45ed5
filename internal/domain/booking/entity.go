package booking

import (
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel flips the appointment to cancelled. Returns alreadyCancelled=true
// when the appointment was cancelled before, so callers can skip the slot
// release and report idempotent success.
func Cancel(ap *models.Appointment, now time.Time) (alreadyCancelled bool, err error) {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return false, err
	}

	if Status(ap.Status) == StatusCancelled {
		return true, nil
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return false, nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
