package booking

import (
	"context"
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/dto"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
)

type Complete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewComplete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Complete {
	return &Complete{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks a confirmed appointment as completed. Staff only: clients
// do not close out their own appointments.
func (uc *Complete) Execute(
	ctx context.Context,
	p identity.Principal,
	appointmentID uint,
) (*dto.AppointmentView, error) {

	if !p.Staff() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := authorize(p, ap); err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &p.UserID,
		Action:       "appointment_completed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	view := toView(ap)
	return &view, nil
}
