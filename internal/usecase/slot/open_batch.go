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

// OpenBatch registers many instants at once for bulk calendar population.
// Instants that already exist for the barber are skipped, not errors, so
// re-sending the same batch inserts nothing new.
type OpenBatch struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewOpenBatch(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *OpenBatch {
	return &OpenBatch{
		repo:  repo,
		audit: audit,
	}
}

func (uc *OpenBatch) Execute(
	ctx context.Context,
	p identity.Principal,
	starts []time.Time,
) ([]models.TimeSlot, error) {

	if p.Role != models.RoleBarber {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if len(starts) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	created, err := uc.repo.CreateMissingSlots(ctx, p.UserID, starts)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: p.BarbershopID,
		UserID:       &p.UserID,
		Action:       "slots_opened_batch",
		Entity:       "time_slot",
		Metadata: map[string]any{
			"requested": len(starts),
			"created":   len(created),
		},
	})

	return created, nil
}
