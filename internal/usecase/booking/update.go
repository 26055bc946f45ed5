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

type UpdateInput struct {
	StartTime *time.Time
	Notes     *string
	Status    *string
}

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. Moving the instant is a reschedule and
// goes through the same slot validation as a fresh booking: the new slot
// must exist, be free and conflict-free, and the swap of old slot for new
// is one transaction. Setting status to cancelled releases the slot like
// Cancel does.
func (uc *Update) Execute(
	ctx context.Context,
	p identity.Principal,
	appointmentID uint,
	in UpdateInput,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := authorize(p, ap); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	releasing := false
	if in.Status != nil && *in.Status != ap.Status {
		status := domain.Status(*in.Status)
		if !domain.IsValid(status) {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}

		switch status {
		case domain.StatusCancelled:
			releasing = domain.Status(ap.Status) == domain.StatusConfirmed
			ap.CancelledAt = &now
		case domain.StatusCompleted:
			ap.CompletedAt = &now
		}
		ap.Status = string(status)
	}

	rescheduling := in.StartTime != nil && !in.StartTime.UTC().Equal(ap.StartTime)

	switch {
	case rescheduling:
		// A reschedule only makes sense on a live reservation.
		if domain.Status(ap.Status) != domain.StatusConfirmed {
			return nil, httperr.ErrBusiness(httperr.CodeConflict)
		}
		if err := uc.repo.RebookInstant(ctx, ap, in.StartTime.UTC()); err != nil {
			return nil, err
		}
	case releasing:
		if err := uc.repo.ReleaseBooking(ctx, ap); err != nil {
			return nil, err
		}
	default:
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &p.UserID,
		Action:       "appointment_updated",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	view := toView(ap)
	return &view, nil
}
