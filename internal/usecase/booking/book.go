package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/dto"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID uint
	BarberID uint

	StartTime time.Time

	// Optional catalog service; when set, it defaults ServiceType and
	// ServicePrice unless the request overrides them.
	ServiceID *uint

	ServiceType   string
	ServicePrice  *float64
	PaymentMethod *string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

// Book is the only path that creates appointments: it resolves the barber,
// validates the slot, and commits the appointment insert together with the
// slot flip in one storage transaction.
type Book struct {
	repo    domain.Repository
	catalog domain.Catalog
	audit   *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	catalog domain.Catalog,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*dto.AppointmentView, error) {

	barber, err := uc.catalog.Barber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	serviceType := in.ServiceType
	servicePrice := in.ServicePrice
	if in.ServiceID != nil {
		service, err := uc.catalog.Service(ctx, barber.BarbershopID, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		if serviceType == "" {
			serviceType = service.Name
		}
		if servicePrice == nil {
			price := service.Price
			servicePrice = &price
		}
	}

	ap := &models.Appointment{
		Reference:     uuid.NewString(),
		BarbershopID:  barber.BarbershopID,
		BarberID:      barber.ID,
		ClientID:      in.ClientID,
		StartTime:     in.StartTime.UTC(),
		Status:        string(domain.InitialStatus()),
		ServiceType:   serviceType,
		ServicePrice:  servicePrice,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}

	// Slot availability and the confirmed-conflict check run inside this
	// transaction; either the insert and the slot flip both persist or
	// neither does.
	if err := uc.repo.CommitBooking(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &in.ClientID,
		Action:       "appointment_booked",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	view := toView(ap)
	view.BarberName = barber.Name
	if name, err := uc.catalog.DisplayName(ctx, in.ClientID); err == nil {
		view.ClientName = name
	}
	return &view, nil
}
