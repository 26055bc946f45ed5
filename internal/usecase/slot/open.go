package slot

import (
	"context"
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// ======================================================
// OPEN (single)
// ======================================================

// Open registers one bookable (barber, instant) pair. Barbers open slots
// for themselves only.
type Open struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewOpen(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Open {
	return &Open{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Open) Execute(
	ctx context.Context,
	p identity.Principal,
	start time.Time,
) (*models.TimeSlot, error) {

	if p.Role != models.RoleBarber {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	slot := &models.TimeSlot{
		BarberID:  p.UserID,
		StartTime: start.UTC(),
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: p.BarbershopID,
		UserID:       &p.UserID,
		Action:       "slot_opened",
		Entity:       "time_slot",
		EntityID:     &slot.ID,
	})

	return slot, nil
}
