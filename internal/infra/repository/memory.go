package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// MemoryStore is an in-memory Repository and Catalog with the same
// business-error semantics as the gorm implementation. It backs the
// use-case tests and is handy for local runs without postgres.
type MemoryStore struct {
	mu sync.Mutex

	users        map[uint]models.User
	services     map[uint]models.Service
	slots        map[uint]models.TimeSlot
	appointments map[uint]models.Appointment

	nextSlotID uint
	nextApptID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        map[uint]models.User{},
		services:     map[uint]models.Service{},
		slots:        map[uint]models.TimeSlot{},
		appointments: map[uint]models.Appointment{},
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (m *MemoryStore) AddUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *MemoryStore) AddService(s models.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[s.ID] = s
}

// --------------------------------------------------
// Slot registry
// --------------------------------------------------

func (m *MemoryStore) findSlotLocked(barberID uint, start time.Time) *models.TimeSlot {
	for id, s := range m.slots {
		if s.BarberID == barberID && s.StartTime.Equal(start) {
			slot := m.slots[id]
			return &slot
		}
	}
	return nil
}

func (m *MemoryStore) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot.StartTime = slot.StartTime.UTC()
	if m.findSlotLocked(slot.BarberID, slot.StartTime) != nil {
		return httperr.ErrBusiness(httperr.CodeDuplicateSlot)
	}

	m.nextSlotID++
	slot.ID = m.nextSlotID
	slot.IsAvailable = true
	slot.CreatedAt = time.Now().UTC()
	m.slots[slot.ID] = *slot
	return nil
}

func (m *MemoryStore) CreateMissingSlots(
	ctx context.Context,
	barberID uint,
	starts []time.Time,
) ([]models.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := make([]models.TimeSlot, 0, len(starts))
	for _, start := range starts {
		start = start.UTC()
		if m.findSlotLocked(barberID, start) != nil {
			continue
		}

		m.nextSlotID++
		slot := models.TimeSlot{
			ID:          m.nextSlotID,
			BarberID:    barberID,
			StartTime:   start,
			IsAvailable: true,
			CreatedAt:   time.Now().UTC(),
		}
		m.slots[slot.ID] = slot
		created = append(created, slot)
	}
	return created, nil
}

func (m *MemoryStore) GetSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &slot, nil
}

func (m *MemoryStore) FindSlot(
	ctx context.Context,
	barberID uint,
	start time.Time,
) (*models.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findSlotLocked(barberID, start.UTC()), nil
}

func (m *MemoryStore) ListSlots(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.TimeSlot
	for _, s := range m.slots {
		if s.BarberID != barberID {
			continue
		}
		if s.StartTime.Before(from.UTC()) || !s.StartTime.Before(to.UTC()) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (m *MemoryStore) SetSlotAvailability(
	ctx context.Context,
	id uint,
	available bool,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	slot.IsAvailable = available
	m.slots[id] = slot
	return nil
}

func (m *MemoryStore) DeleteSlot(
	ctx context.Context,
	id uint,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	for _, ap := range m.appointments {
		if ap.BarberID == slot.BarberID &&
			ap.StartTime.Equal(slot.StartTime) &&
			ap.Status == "confirmed" {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}
	}

	delete(m.slots, id)
	return nil
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

func (m *MemoryStore) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (m *MemoryStore) findConflictingLocked(barberID uint, start time.Time, skipID uint) *models.Appointment {
	for id, ap := range m.appointments {
		if id == skipID {
			continue
		}
		if ap.BarberID == barberID && ap.StartTime.Equal(start) && ap.Status == "confirmed" {
			found := m.appointments[id]
			return &found
		}
	}
	return nil
}

func (m *MemoryStore) FindConflicting(
	ctx context.Context,
	barberID uint,
	start time.Time,
) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findConflictingLocked(barberID, start.UTC(), 0), nil
}

func (m *MemoryStore) listWhere(match func(models.Appointment) bool) []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Appointment
	for _, ap := range m.appointments {
		if match(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}

func (m *MemoryStore) ListForClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	return m.listWhere(func(ap models.Appointment) bool { return ap.ClientID == clientID }), nil
}

func (m *MemoryStore) ListForBarber(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	return m.listWhere(func(ap models.Appointment) bool { return ap.BarberID == barberID }), nil
}

func (m *MemoryStore) ListForBarbershop(ctx context.Context, barbershopID uint) ([]models.Appointment, error) {
	return m.listWhere(func(ap models.Appointment) bool { return ap.BarbershopID == barbershopID }), nil
}

func (m *MemoryStore) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	ap.UpdatedAt = time.Now().UTC()
	m.appointments[ap.ID] = *ap
	return nil
}

// --------------------------------------------------
// Compound operations
// --------------------------------------------------

func (m *MemoryStore) claimSlotLocked(barberID uint, start time.Time) (*models.TimeSlot, error) {
	slot := m.findSlotLocked(barberID, start)
	if slot == nil || !slot.IsAvailable {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	slot.IsAvailable = false
	m.slots[slot.ID] = *slot
	return slot, nil
}

func (m *MemoryStore) releaseSlotLocked(barberID uint, start time.Time) {
	if slot := m.findSlotLocked(barberID, start); slot != nil {
		slot.IsAvailable = true
		m.slots[slot.ID] = *slot
	}
}

func (m *MemoryStore) CommitBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap.StartTime = ap.StartTime.UTC()

	slot, err := m.claimSlotLocked(ap.BarberID, ap.StartTime)
	if err != nil {
		return err
	}

	if m.findConflictingLocked(ap.BarberID, ap.StartTime, 0) != nil {
		// roll back the claim, mirroring the aborted transaction
		m.releaseSlotLocked(ap.BarberID, ap.StartTime)
		return httperr.ErrBusiness(httperr.CodeAlreadyBooked)
	}

	m.nextApptID++
	ap.ID = m.nextApptID
	ap.SlotID = &slot.ID
	now := time.Now().UTC()
	ap.CreatedAt = now
	ap.UpdatedAt = now
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *MemoryStore) ReleaseBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	ap.UpdatedAt = time.Now().UTC()
	m.appointments[ap.ID] = *ap
	m.releaseSlotLocked(ap.BarberID, ap.StartTime)
	return nil
}

func (m *MemoryStore) RebookInstant(
	ctx context.Context,
	ap *models.Appointment,
	newStart time.Time,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	newStart = newStart.UTC()
	oldStart := ap.StartTime

	slot, err := m.claimSlotLocked(ap.BarberID, newStart)
	if err != nil {
		return err
	}

	if m.findConflictingLocked(ap.BarberID, newStart, ap.ID) != nil {
		m.releaseSlotLocked(ap.BarberID, newStart)
		return httperr.ErrBusiness(httperr.CodeAlreadyBooked)
	}

	m.releaseSlotLocked(ap.BarberID, oldStart)

	ap.StartTime = newStart
	ap.SlotID = &slot.ID
	ap.UpdatedAt = time.Now().UTC()
	m.appointments[ap.ID] = *ap
	return nil
}

// --------------------------------------------------
// Aggregation window
// --------------------------------------------------

func (m *MemoryStore) ListForWindow(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {
	aps := m.listWhere(func(ap models.Appointment) bool {
		if ap.BarbershopID != barbershopID {
			return false
		}
		if barberID != 0 && ap.BarberID != barberID {
			return false
		}
		return !ap.StartTime.Before(from.UTC()) && ap.StartTime.Before(to.UTC())
	})
	return aps, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (m *MemoryStore) Barber(
	ctx context.Context,
	barberID uint,
) (*domain.BarberProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[barberID]
	if !ok || u.Role != models.RoleBarber {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}
	return &domain.BarberProfile{
		ID:           u.ID,
		Name:         u.Name,
		BarbershopID: u.BarbershopID,
	}, nil
}

func (m *MemoryStore) DisplayName(
	ctx context.Context,
	userID uint,
) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return "", httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return u.Name, nil
}

func (m *MemoryStore) Service(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.services[serviceID]
	if !ok || s.BarbershopID != barbershopID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &s, nil
}

// Compile-time checks
var (
	_ domain.Repository = (*MemoryStore)(nil)
	_ domain.Catalog    = (*MemoryStore)(nil)
)
