package booking

import (
	"context"
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the appointment and releases its slot. Cancelling an
// already-cancelled appointment succeeds as a no-op.
func (uc *Cancel) Execute(
	ctx context.Context,
	p identity.Principal,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if err := authorize(p, ap); err != nil {
		return err
	}

	alreadyCancelled, err := domain.Cancel(ap, time.Now().UTC())
	if err != nil {
		return err
	}
	if alreadyCancelled {
		return nil
	}

	if err := uc.repo.ReleaseBooking(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &p.UserID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return nil
}
