package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/audit"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/infra/repository"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

var baseTime = time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *repository.MemoryStore {
	t.Helper()

	store := repository.NewMemoryStore()
	store.AddUser(models.User{ID: 1, Name: "Rodrigo", Role: models.RoleBarber, BarbershopID: 1})
	store.AddUser(models.User{ID: 2, Name: "Marcela", Role: models.RoleManager, BarbershopID: 1})
	store.AddUser(models.User{ID: 3, Name: "Carlos", Role: models.RoleClient})
	store.AddUser(models.User{ID: 4, Name: "Otávio", Role: models.RoleBarber, BarbershopID: 2})
	return store
}

func barber() identity.Principal {
	return identity.Principal{UserID: 1, Role: models.RoleBarber, BarbershopID: 1}
}

func manager() identity.Principal {
	return identity.Principal{UserID: 2, Role: models.RoleManager, BarbershopID: 1}
}

func client() identity.Principal {
	return identity.Principal{UserID: 3, Role: models.RoleClient}
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

// ======================================================
// Open
// ======================================================

func TestOpenCreatesAvailableSlot(t *testing.T) {
	store := newStore(t)
	uc := NewOpen(store, testDispatcher())

	slot, err := uc.Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)
	assert.NotZero(t, slot.ID)
	assert.Equal(t, uint(1), slot.BarberID)
	assert.True(t, slot.IsAvailable)
	assert.Equal(t, baseTime, slot.StartTime)
}

func TestOpenDuplicateInstantFails(t *testing.T) {
	store := newStore(t)
	uc := NewOpen(store, testDispatcher())

	_, err := uc.Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), barber(), baseTime)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateSlot))
}

func TestOpenSameInstantDifferentBarbers(t *testing.T) {
	store := newStore(t)
	uc := NewOpen(store, testDispatcher())

	_, err := uc.Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	other := identity.Principal{UserID: 4, Role: models.RoleBarber, BarbershopID: 2}
	_, err = uc.Execute(context.Background(), other, baseTime)
	assert.NoError(t, err)
}

func TestOpenForbiddenForClientsAndManagers(t *testing.T) {
	store := newStore(t)
	uc := NewOpen(store, testDispatcher())

	_, err := uc.Execute(context.Background(), client(), baseTime)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	_, err = uc.Execute(context.Background(), manager(), baseTime)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

// ======================================================
// OpenBatch
// ======================================================

func TestOpenBatchSkipsExisting(t *testing.T) {
	store := newStore(t)
	_, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	uc := NewOpenBatch(store, testDispatcher())
	starts := []time.Time{baseTime, baseTime.Add(time.Hour), baseTime.Add(2 * time.Hour)}

	created, err := uc.Execute(context.Background(), barber(), starts)
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestOpenBatchIsIdempotent(t *testing.T) {
	store := newStore(t)
	uc := NewOpenBatch(store, testDispatcher())
	starts := []time.Time{baseTime, baseTime.Add(time.Hour)}

	created, err := uc.Execute(context.Background(), barber(), starts)
	require.NoError(t, err)
	assert.Len(t, created, 2)

	created, err = uc.Execute(context.Background(), barber(), starts)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestOpenBatchEmptyRejected(t *testing.T) {
	store := newStore(t)
	uc := NewOpenBatch(store, testDispatcher())

	_, err := uc.Execute(context.Background(), barber(), nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

// ======================================================
// MarkAvailability
// ======================================================

func TestMarkAvailabilityByOwner(t *testing.T) {
	store := newStore(t)
	slot, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	uc := NewMarkAvailability(store, store, testDispatcher())
	require.NoError(t, uc.Execute(context.Background(), barber(), slot.ID, false))

	got, err := store.GetSlot(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestMarkAvailabilityByManagerOfSameShop(t *testing.T) {
	store := newStore(t)
	slot, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	uc := NewMarkAvailability(store, store, testDispatcher())
	assert.NoError(t, uc.Execute(context.Background(), manager(), slot.ID, false))
}

func TestMarkAvailabilityCrossShopForbidden(t *testing.T) {
	store := newStore(t)
	slot, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	uc := NewMarkAvailability(store, store, testDispatcher())

	otherManager := identity.Principal{UserID: 9, Role: models.RoleManager, BarbershopID: 2}
	err = uc.Execute(context.Background(), otherManager, slot.ID, false)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	otherBarber := identity.Principal{UserID: 4, Role: models.RoleBarber, BarbershopID: 2}
	err = uc.Execute(context.Background(), otherBarber, slot.ID, false)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

// ======================================================
// Remove
// ======================================================

func TestRemoveFreeSlot(t *testing.T) {
	store := newStore(t)
	slot, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	uc := NewRemove(store, store, testDispatcher())
	require.NoError(t, uc.Execute(context.Background(), barber(), slot.ID))

	_, err = store.GetSlot(context.Background(), slot.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestRemoveBookedSlotConflicts(t *testing.T) {
	store := newStore(t)
	slot, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	ap := &models.Appointment{
		BarbershopID: 1,
		BarberID:     1,
		ClientID:     3,
		StartTime:    baseTime,
		Status:       "confirmed",
	}
	require.NoError(t, store.CommitBooking(context.Background(), ap))

	uc := NewRemove(store, store, testDispatcher())
	err = uc.Execute(context.Background(), barber(), slot.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}

func TestRemoveAfterCancellationSucceeds(t *testing.T) {
	store := newStore(t)
	slot, err := NewOpen(store, testDispatcher()).Execute(context.Background(), barber(), baseTime)
	require.NoError(t, err)

	ap := &models.Appointment{
		BarbershopID: 1,
		BarberID:     1,
		ClientID:     3,
		StartTime:    baseTime,
		Status:       "confirmed",
	}
	require.NoError(t, store.CommitBooking(context.Background(), ap))

	ap.Status = "cancelled"
	require.NoError(t, store.ReleaseBooking(context.Background(), ap))

	uc := NewRemove(store, store, testDispatcher())
	assert.NoError(t, uc.Execute(context.Background(), barber(), slot.ID))
}

// ======================================================
// List
// ======================================================

func TestListReturnsWindowOrdered(t *testing.T) {
	store := newStore(t)
	open := NewOpen(store, testDispatcher())

	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour, 48 * time.Hour} {
		_, err := open.Execute(context.Background(), barber(), baseTime.Add(offset))
		require.NoError(t, err)
	}

	uc := NewList(store, store)
	slots, err := uc.Execute(context.Background(), 1, baseTime, baseTime.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, baseTime, slots[0].StartTime)
	assert.Equal(t, baseTime.Add(2*time.Hour), slots[2].StartTime)
}

func TestListUnknownBarber(t *testing.T) {
	store := newStore(t)

	_, err := NewList(store, store).Execute(context.Background(), 99, baseTime, baseTime.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotFound))
}
