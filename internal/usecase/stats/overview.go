package stats

import (
	"context"
	"time"

	booking "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/stats"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/dto"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
)

// Payment methods the dashboard always reports, present even at zero.
var paymentMethods = []string{"pix", "cartao", "dinheiro"}

const topLimit = 5

// Overview computes the dashboard numbers for one period. Barbers get
// their own scope, managers their whole barbershop; everything is
// recomputed from the ledger on each call.
type Overview struct {
	repo booking.Repository
}

func NewOverview(repo booking.Repository) *Overview {
	return &Overview{repo: repo}
}

func (uc *Overview) Execute(
	ctx context.Context,
	p identity.Principal,
	period domain.Period,
) (*dto.StatsOverview, error) {

	var barberID uint
	switch {
	case p.IsManager():
		barberID = 0
	case p.IsBarber():
		barberID = p.UserID
	default:
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	window, err := domain.Resolve(period, time.Now())
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListForWindow(
		ctx,
		p.BarbershopID,
		barberID,
		window.Start,
		window.End,
	)
	if err != nil {
		return nil, err
	}

	return &dto.StatsOverview{
		Period:      string(period),
		WindowStart: window.Start,
		WindowEnd:   window.End,

		ConfirmedCount: domain.CountByStatus(aps, booking.StatusConfirmed),
		CancelledCount: domain.CountByStatus(aps, booking.StatusCancelled),
		CompletedCount: domain.CountByStatus(aps, booking.StatusCompleted),

		Revenue:         domain.SumRevenue(aps),
		DistinctClients: domain.DistinctClientCount(aps),

		DailyBreakdown:   domain.DailyBreakdown(aps),
		PaymentMethodMix: domain.PaymentMethodMix(aps, paymentMethods),

		TopServices: domain.TopServices(aps, topLimit),
		TopBarbers:  domain.RankBarbers(aps, topLimit),
	}, nil
}
