package booking

import (
	"context"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/dto"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

type ListForPrincipal struct {
	repo domain.Repository
}

func NewListForPrincipal(repo domain.Repository) *ListForPrincipal {
	return &ListForPrincipal{repo: repo}
}

// Execute returns the appointments visible to the caller, most recent
// first: clients see their own, barbers their own, managers their whole
// barbershop.
func (uc *ListForPrincipal) Execute(
	ctx context.Context,
	p identity.Principal,
) ([]dto.AppointmentView, error) {

	var (
		aps []models.Appointment
		err error
	)

	switch p.Role {
	case models.RoleClient:
		aps, err = uc.repo.ListForClient(ctx, p.UserID)
	case models.RoleBarber:
		aps, err = uc.repo.ListForBarber(ctx, p.UserID)
	case models.RoleManager:
		aps, err = uc.repo.ListForBarbershop(ctx, p.BarbershopID)
	default:
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentView, 0, len(aps))
	for i := range aps {
		out = append(out, toView(&aps[i]))
	}
	return out, nil
}
