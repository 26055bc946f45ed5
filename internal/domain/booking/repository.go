package booking

import (
	"context"
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// Repository is the storage contract for the slot registry and the
// appointment ledger. Implementations map business violations to
// httperr.BusinessError codes so use cases stay storage-agnostic.
type Repository interface {
	// -------- Slot registry --------
	CreateSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error // duplicate (barber, instant) → duplicate_slot

	// CreateMissingSlots inserts slots for the given instants, silently
	// skipping pairs that already exist, and returns only the new rows.
	CreateMissingSlots(
		ctx context.Context,
		barberID uint,
		starts []time.Time,
	) ([]models.TimeSlot, error)

	GetSlot(
		ctx context.Context,
		id uint,
	) (*models.TimeSlot, error)

	// FindSlot returns (nil, nil) when no slot exists for the pair.
	FindSlot(
		ctx context.Context,
		barberID uint,
		start time.Time,
	) (*models.TimeSlot, error)

	ListSlots(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.TimeSlot, error)

	SetSlotAvailability(
		ctx context.Context,
		id uint,
		available bool,
	) error

	// DeleteSlot fails with conflict while a confirmed appointment holds
	// the slot's (barber, instant) pair.
	DeleteSlot(
		ctx context.Context,
		id uint,
	) error

	// -------- Appointment ledger --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// FindConflicting returns the confirmed appointment occupying the pair,
	// or (nil, nil). Catches double-booking even when the slot row is gone.
	FindConflicting(
		ctx context.Context,
		barberID uint,
		start time.Time,
	) (*models.Appointment, error)

	ListForClient(ctx context.Context, clientID uint) ([]models.Appointment, error)
	ListForBarber(ctx context.Context, barberID uint) ([]models.Appointment, error)
	ListForBarbershop(ctx context.Context, barbershopID uint) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Compound operations (single transaction each) --------

	// CommitBooking locks the slot row, re-checks availability and
	// conflicts, inserts the confirmed appointment and flips the slot.
	// Either both writes persist or neither does.
	CommitBooking(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReleaseBooking persists the cancelled appointment and frees the
	// matching slot. A missing slot row is not an error.
	ReleaseBooking(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RebookInstant moves the appointment to a validated new instant:
	// releases the old slot, claims the new one and updates the row.
	RebookInstant(
		ctx context.Context,
		ap *models.Appointment,
		newStart time.Time,
	) error

	// -------- Aggregation window --------

	// ListForWindow returns appointments for the tenant scope with
	// start_time in [from, to). barberID zero means barbershop-wide.
	ListForWindow(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}

// BarberProfile is what the booking coordinator needs to know about a
// barber: identity, display name and tenant.
type BarberProfile struct {
	ID           uint
	Name         string
	BarbershopID uint
}

// Catalog resolves barbers, display names and service records. Backed by
// the relational store with an optional cache in front.
type Catalog interface {
	// Barber fails with barber_not_found when the id is absent or does not
	// have the barber role.
	Barber(ctx context.Context, barberID uint) (*BarberProfile, error)

	DisplayName(ctx context.Context, userID uint) (string, error)

	Service(ctx context.Context, barbershopID uint, serviceID uint) (*models.Service, error)
}
