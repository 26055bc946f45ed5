package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
)

var laterSlotTime = slotTime.Add(time.Hour)

func strptr(s string) *string { return &s }

func TestUpdateNotesOnly(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	uc := NewUpdate(store, testDispatcher())

	updated, err := uc.Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		Notes: strptr("sem máquina"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sem máquina", updated.Notes)
	assert.Equal(t, "confirmed", updated.Status)
	assert.Equal(t, slotTime, updated.StartTime)
}

func TestUpdateRescheduleMovesSlots(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	openSlot(t, store, laterSlotTime)
	uc := NewUpdate(store, testDispatcher())

	newStart := laterSlotTime
	updated, err := uc.Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		StartTime: &newStart,
	})
	require.NoError(t, err)
	assert.Equal(t, laterSlotTime, updated.StartTime)
	assert.Equal(t, "confirmed", updated.Status)

	oldSlot, err := store.FindSlot(context.Background(), barberID, slotTime)
	require.NoError(t, err)
	require.NotNil(t, oldSlot)
	assert.True(t, oldSlot.IsAvailable)

	newSlot, err := store.FindSlot(context.Background(), barberID, laterSlotTime)
	require.NoError(t, err)
	require.NotNil(t, newSlot)
	assert.False(t, newSlot.IsAvailable)
}

func TestUpdateRescheduleWithoutSlotFails(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	uc := NewUpdate(store, testDispatcher())

	newStart := laterSlotTime
	_, err := uc.Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		StartTime: &newStart,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))

	// failed reschedule leaves the original reservation untouched
	ap, getErr := store.GetAppointment(context.Background(), view.ID)
	require.NoError(t, getErr)
	assert.Equal(t, slotTime, ap.StartTime)
	assert.Equal(t, "confirmed", ap.Status)
}

func TestUpdateRescheduleToTakenInstantFails(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	openSlot(t, store, laterSlotTime)

	_, err := NewBook(store, store, testDispatcher()).Execute(context.Background(), BookInput{
		ClientID:  otherClientID,
		BarberID:  barberID,
		StartTime: laterSlotTime,
	})
	require.NoError(t, err)

	newStart := laterSlotTime
	_, err = NewUpdate(store, testDispatcher()).Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		StartTime: &newStart,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
}

func TestUpdateRescheduleCancelledConflicts(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	openSlot(t, store, laterSlotTime)

	require.NoError(t, NewCancel(store, testDispatcher()).Execute(context.Background(), clientPrincipal(), view.ID))

	newStart := laterSlotTime
	_, err := NewUpdate(store, testDispatcher()).Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		StartTime: &newStart,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}

func TestUpdateStatusToCancelledReleasesSlot(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	uc := NewUpdate(store, testDispatcher())

	updated, err := uc.Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		Status: strptr("cancelled"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)
	assert.NotNil(t, updated.CancelledAt)

	slot, err := store.FindSlot(context.Background(), barberID, slotTime)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.True(t, slot.IsAvailable)
}

func TestUpdateInvalidStatusRejected(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	uc := NewUpdate(store, testDispatcher())

	_, err := uc.Execute(context.Background(), clientPrincipal(), view.ID, UpdateInput{
		Status: strptr("realizado"),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestUpdateForbiddenForOtherClient(t *testing.T) {
	store := newStore(t)
	view := bookOne(t, store)
	uc := NewUpdate(store, testDispatcher())

	other := clientPrincipal()
	other.UserID = otherClientID
	_, err := uc.Execute(context.Background(), other, view.ID, UpdateInput{Notes: strptr("x")})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}
