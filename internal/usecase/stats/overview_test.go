package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/stats"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/infra/repository"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

func price(v float64) *float64 { return &v }

func method(m string) *string { return &m }

// seed commits one slot + appointment at start and applies the final status.
func seed(t *testing.T, store *repository.MemoryStore, barberID, clientID uint, start time.Time, status string, p *float64, pay *string) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, store.CreateSlot(ctx, &models.TimeSlot{BarberID: barberID, StartTime: start}))

	ap := &models.Appointment{
		BarbershopID:  1,
		BarberID:      barberID,
		ClientID:      clientID,
		StartTime:     start,
		Status:        "confirmed",
		ServiceType:   "corte",
		ServicePrice:  p,
		PaymentMethod: pay,
	}
	require.NoError(t, store.CommitBooking(ctx, ap))

	if status != "confirmed" {
		ap.Status = status
		require.NoError(t, store.UpdateAppointment(ctx, ap))
	}
}

func TestOverviewForManager(t *testing.T) {
	store := repository.NewMemoryStore()
	window, err := domain.Resolve(domain.PeriodWeek, time.Now())
	require.NoError(t, err)

	inWindow := window.Start.Add(10 * time.Hour)
	seed(t, store, 1, 10, inWindow, "completed", price(50), method("pix"))
	seed(t, store, 1, 11, inWindow.Add(time.Hour), "completed", price(30), method("cartao"))
	seed(t, store, 2, 10, inWindow.Add(2*time.Hour), "confirmed", price(40), nil)
	seed(t, store, 2, 12, inWindow.Add(3*time.Hour), "cancelled", nil, nil)
	// outside the window, must not count
	seed(t, store, 1, 10, window.Start.Add(-time.Hour), "completed", price(500), method("pix"))

	manager := identity.Principal{UserID: 3, Role: models.RoleManager, BarbershopID: 1}
	overview, err := NewOverview(store).Execute(context.Background(), manager, domain.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, "week", overview.Period)
	assert.Equal(t, window.Start, overview.WindowStart)
	assert.Equal(t, 2, overview.CompletedCount)
	assert.Equal(t, 1, overview.ConfirmedCount)
	assert.Equal(t, 1, overview.CancelledCount)
	assert.Equal(t, 80.0, overview.Revenue)
	assert.Equal(t, 3, overview.DistinctClients)
	assert.Equal(t, 50, overview.PaymentMethodMix["pix"])
	assert.Equal(t, 50, overview.PaymentMethodMix["cartao"])
	assert.Equal(t, 0, overview.PaymentMethodMix["dinheiro"])
}

func TestOverviewBarberScopedToOwnLedger(t *testing.T) {
	store := repository.NewMemoryStore()
	window, err := domain.Resolve(domain.PeriodWeek, time.Now())
	require.NoError(t, err)

	inWindow := window.Start.Add(10 * time.Hour)
	seed(t, store, 1, 10, inWindow, "completed", price(50), nil)
	seed(t, store, 2, 11, inWindow, "completed", price(90), nil)

	barber := identity.Principal{UserID: 1, Role: models.RoleBarber, BarbershopID: 1}
	overview, err := NewOverview(store).Execute(context.Background(), barber, domain.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, 1, overview.CompletedCount)
	assert.Equal(t, 50.0, overview.Revenue)
}

func TestOverviewZeroData(t *testing.T) {
	store := repository.NewMemoryStore()

	manager := identity.Principal{UserID: 3, Role: models.RoleManager, BarbershopID: 1}
	overview, err := NewOverview(store).Execute(context.Background(), manager, domain.PeriodMonth)
	require.NoError(t, err)

	assert.Zero(t, overview.Revenue)
	assert.Zero(t, overview.CompletedCount)
	assert.Zero(t, overview.DistinctClients)
	assert.Empty(t, overview.TopServices)
	assert.Empty(t, overview.TopBarbers)
	for _, pct := range overview.PaymentMethodMix {
		assert.Zero(t, pct)
	}
}

func TestOverviewClientForbidden(t *testing.T) {
	store := repository.NewMemoryStore()

	client := identity.Principal{UserID: 5, Role: models.RoleClient}
	_, err := NewOverview(store).Execute(context.Background(), client, domain.PeriodWeek)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestOverviewInvalidPeriod(t *testing.T) {
	store := repository.NewMemoryStore()

	manager := identity.Principal{UserID: 3, Role: models.RoleManager, BarbershopID: 1}
	_, err := NewOverview(store).Execute(context.Background(), manager, domain.Period("decade"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}
