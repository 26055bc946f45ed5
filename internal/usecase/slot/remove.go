package slot

import (
	"context"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
)

// Remove deletes a slot for good. Fails with conflict while a confirmed
// appointment still holds the pair; cancellation history is untouched.
type Remove struct {
	repo    domain.Repository
	catalog domain.Catalog
	audit   *audit.Dispatcher
}

func NewRemove(
	repo domain.Repository,
	catalog domain.Catalog,
	audit *audit.Dispatcher,
) *Remove {
	return &Remove{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
	}
}

func (uc *Remove) Execute(
	ctx context.Context,
	p identity.Principal,
	slotID uint,
) error {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return err
	}

	if err := authorizeSlot(ctx, uc.catalog, p, slot); err != nil {
		return err
	}

	if err := uc.repo.DeleteSlot(ctx, slotID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: p.BarbershopID,
		UserID:       &p.UserID,
		Action:       "slot_removed",
		Entity:       "time_slot",
		EntityID:     &slotID,
	})

	return nil
}
