package slot

import (
	"context"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// MarkAvailability is the manual override: it toggles a slot's flag
// without touching appointments, deliberately outside the booking path's
// invariant. Owning barber or the barber's manager only.
type MarkAvailability struct {
	repo    domain.Repository
	catalog domain.Catalog
	audit   *audit.Dispatcher
}

func NewMarkAvailability(
	repo domain.Repository,
	catalog domain.Catalog,
	audit *audit.Dispatcher,
) *MarkAvailability {
	return &MarkAvailability{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
	}
}

// authorizeSlot allows the owning barber, or a manager of the shop the
// owning barber works for.
func authorizeSlot(
	ctx context.Context,
	catalog domain.Catalog,
	p identity.Principal,
	slot *models.TimeSlot,
) error {

	switch p.Role {
	case models.RoleBarber:
		if slot.BarberID == p.UserID {
			return nil
		}
	case models.RoleManager:
		owner, err := catalog.Barber(ctx, slot.BarberID)
		if err != nil {
			return err
		}
		if owner.BarbershopID == p.BarbershopID {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}

func (uc *MarkAvailability) Execute(
	ctx context.Context,
	p identity.Principal,
	slotID uint,
	available bool,
) error {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return err
	}

	if err := authorizeSlot(ctx, uc.catalog, p, slot); err != nil {
		return err
	}

	if err := uc.repo.SetSlotAvailability(ctx, slotID, available); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: p.BarbershopID,
		UserID:       &p.UserID,
		Action:       "slot_availability_marked",
		Entity:       "time_slot",
		EntityID:     &slotID,
		Metadata:     map[string]any{"available": available},
	})

	return nil
}
