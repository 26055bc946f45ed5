package slot

import (
	"context"
	"time"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// List returns a barber's slots within [from, to), available and taken
// alike, for calendar rendering. Any authenticated caller may browse.
type List struct {
	repo    domain.Repository
	catalog domain.Catalog
}

func NewList(
	repo domain.Repository,
	catalog domain.Catalog,
) *List {
	return &List{
		repo:    repo,
		catalog: catalog,
	}
}

func (uc *List) Execute(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.TimeSlot, error) {

	// Reject unknown barbers up front so a bad id yields barber_not_found
	// instead of an empty list.
	if _, err := uc.catalog.Barber(ctx, barberID); err != nil {
		return nil, err
	}

	return uc.repo.ListSlots(ctx, barberID, from.UTC(), to.UTC())
}
