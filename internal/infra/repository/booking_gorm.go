package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slot registry
// --------------------------------------------------

func (r *BookingGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	slot.StartTime = slot.StartTime.UTC()
	slot.IsAvailable = true

	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeDuplicateSlot)
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) CreateMissingSlots(
	ctx context.Context,
	barberID uint,
	starts []time.Time,
) ([]models.TimeSlot, error) {

	created := make([]models.TimeSlot, 0, len(starts))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.TimeSlot
		if err := tx.
			Where("barber_id = ?", barberID).
			Find(&existing).Error; err != nil {
			return err
		}

		taken := make(map[int64]bool, len(existing))
		for _, s := range existing {
			taken[s.StartTime.UTC().Unix()] = true
		}

		for _, start := range starts {
			start = start.UTC()
			if taken[start.Unix()] {
				continue
			}
			taken[start.Unix()] = true

			slot := models.TimeSlot{
				BarberID:    barberID,
				StartTime:   start,
				IsAvailable: true,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
			created = append(created, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) FindSlot(
	ctx context.Context,
	barberID uint,
	start time.Time,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND start_time = ?", barberID, start.UTC()).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) ListSlots(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, from.UTC(), to.UTC(),
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) SetSlotAvailability(
	ctx context.Context,
	id uint,
	available bool,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", id).
		Update("is_available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

func (r *BookingGormRepository) DeleteSlot(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.TimeSlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeNotFound)
			}
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND start_time = ? AND status = ?",
				slot.BarberID, slot.StartTime, "confirmed",
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}

		return tx.Delete(&slot).Error
	})
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) FindConflicting(
	ctx context.Context,
	barberID uint,
	start time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time = ? AND status = ?",
			barberID, start.UTC(), "confirmed",
		).
		First(&ap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) listAppointments(
	ctx context.Context,
	cond string,
	id uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Where(cond, id).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return r.listAppointments(ctx, "client_id = ?", clientID)
}

func (r *BookingGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {
	return r.listAppointments(ctx, "barber_id = ?", barberID)
}

func (r *BookingGormRepository) ListForBarbershop(
	ctx context.Context,
	barbershopID uint,
) ([]models.Appointment, error) {
	return r.listAppointments(ctx, "barbershop_id = ?", barbershopID)
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Compound operations
// --------------------------------------------------

// claimSlot locks the slot row for the pair and flips it unavailable.
// Returns slot_unavailable when the row is missing or already taken.
func claimSlot(tx *gorm.DB, barberID uint, start time.Time) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("barber_id = ? AND start_time = ?", barberID, start).
		First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return nil, err
	}

	if !slot.IsAvailable {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	if err := tx.Model(&slot).Update("is_available", false).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) CommitBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.StartTime = ap.StartTime.UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := claimSlot(tx, ap.BarberID, ap.StartTime)
		if err != nil {
			return err
		}
		ap.SlotID = &slot.ID

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND start_time = ? AND status = ?",
				ap.BarberID, ap.StartTime, "confirmed",
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeAlreadyBooked)
		}

		return tx.Create(ap).Error
	})

	// The partial unique index backstops paths the row lock does not
	// serialize, e.g. a manual availability override racing a booking.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeAlreadyBooked)
	}
	return err
}

// releaseSlot frees the slot for the appointment's pair. Missing rows are
// ignored: slots may be removed independently of appointment history.
func releaseSlot(tx *gorm.DB, barberID uint, start time.Time) error {
	res := tx.
		Model(&models.TimeSlot{}).
		Where("barber_id = ? AND start_time = ?", barberID, start).
		Update("is_available", true)
	return res.Error
}

func (r *BookingGormRepository) ReleaseBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		return releaseSlot(tx, ap.BarberID, ap.StartTime)
	})
}

func (r *BookingGormRepository) RebookInstant(
	ctx context.Context,
	ap *models.Appointment,
	newStart time.Time,
) error {

	newStart = newStart.UTC()
	oldStart := ap.StartTime

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := claimSlot(tx, ap.BarberID, newStart)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND start_time = ? AND status = ? AND id <> ?",
				ap.BarberID, newStart, "confirmed", ap.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeAlreadyBooked)
		}

		if err := releaseSlot(tx, ap.BarberID, oldStart); err != nil {
			return err
		}

		ap.StartTime = newStart
		ap.SlotID = &slot.ID
		return tx.Save(ap).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeAlreadyBooked)
	}
	return err
}

// --------------------------------------------------
// Aggregation window
// --------------------------------------------------

func (r *BookingGormRepository) ListForWindow(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Where(
			"barbershop_id = ? AND start_time >= ? AND start_time < ?",
			barbershopID, from.UTC(), to.UTC(),
		)
	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
