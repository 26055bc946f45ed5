package booking

import (
	"context"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/dto"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(
	ctx context.Context,
	p identity.Principal,
	appointmentID uint,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := authorize(p, ap); err != nil {
		return nil, err
	}

	view := toView(ap)
	return &view, nil
}
