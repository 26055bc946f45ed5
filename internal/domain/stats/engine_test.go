package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

func price(v float64) *float64 { return &v }

func method(m string) *string { return &m }

func completed(barberID, clientID uint, service string, p *float64, pay *string, start time.Time) models.Appointment {
	return models.Appointment{
		BarberID:      barberID,
		ClientID:      clientID,
		StartTime:     start,
		Status:        string(booking.StatusCompleted),
		ServiceType:   service,
		ServicePrice:  p,
		PaymentMethod: pay,
	}
}

func TestCountByStatus(t *testing.T) {
	aps := []models.Appointment{
		{Status: "confirmed"},
		{Status: "confirmed"},
		{Status: "cancelled"},
		{Status: "completed"},
	}

	assert.Equal(t, 2, CountByStatus(aps, booking.StatusConfirmed))
	assert.Equal(t, 1, CountByStatus(aps, booking.StatusCancelled))
	assert.Equal(t, 1, CountByStatus(aps, booking.StatusCompleted))
	assert.Equal(t, 0, CountByStatus(aps, booking.StatusPending))
}

func TestSumRevenueOnlyCompleted(t *testing.T) {
	aps := []models.Appointment{
		{Status: "completed", ServicePrice: price(50)},
		{Status: "completed", ServicePrice: price(30)},
		{Status: "confirmed", ServicePrice: price(100)},
		{Status: "cancelled", ServicePrice: price(100)},
	}

	assert.Equal(t, 80.0, SumRevenue(aps))
}

func TestSumRevenueNilPriceCountsAsZero(t *testing.T) {
	aps := []models.Appointment{
		{Status: "completed", ServicePrice: nil},
		{Status: "completed", ServicePrice: price(25)},
	}

	assert.Equal(t, 25.0, SumRevenue(aps))
}

func TestDistinctClientCount(t *testing.T) {
	aps := []models.Appointment{
		{ClientID: 1}, {ClientID: 2}, {ClientID: 1}, {ClientID: 3},
	}

	assert.Equal(t, 3, DistinctClientCount(aps))
	assert.Equal(t, 0, DistinctClientCount(nil))
}

func TestDailyBreakdownMondayFirst(t *testing.T) {
	monday := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		completed(1, 1, "corte", price(40), nil, monday),
		completed(1, 2, "corte", price(40), nil, monday),
		completed(1, 3, "barba", price(25), nil, sunday),
		{Status: "confirmed", StartTime: monday},
	}

	days := DailyBreakdown(aps)
	assert.Equal(t, 2, days[0])
	assert.Equal(t, 1, days[6])
	for i := 1; i < 6; i++ {
		assert.Equal(t, 0, days[i])
	}
}

func TestPaymentMethodMixZeroData(t *testing.T) {
	methods := []string{"pix", "cartao", "dinheiro"}

	mix := PaymentMethodMix(nil, methods)
	require.Len(t, mix, 3)
	for _, m := range methods {
		assert.Equal(t, 0, mix[m])
	}
}

func TestPaymentMethodMixIntegerPercentages(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	aps := []models.Appointment{
		completed(1, 1, "corte", price(40), method("pix"), start),
		completed(1, 2, "corte", price(40), method("pix"), start),
		completed(1, 3, "corte", price(40), method("cartao"), start),
	}

	mix := PaymentMethodMix(aps, []string{"pix", "cartao", "dinheiro"})
	assert.Equal(t, 66, mix["pix"])
	assert.Equal(t, 33, mix["cartao"])
	assert.Equal(t, 0, mix["dinheiro"])

	sum := 0
	for _, v := range mix {
		sum += v
	}
	assert.LessOrEqual(t, sum, 100)
}

func TestPaymentMethodMixIgnoresNonCompleted(t *testing.T) {
	start := time.Now().UTC()
	aps := []models.Appointment{
		completed(1, 1, "corte", price(40), method("pix"), start),
		{Status: "confirmed", PaymentMethod: method("cartao"), StartTime: start},
	}

	mix := PaymentMethodMix(aps, []string{"pix", "cartao"})
	assert.Equal(t, 100, mix["pix"])
	assert.Equal(t, 0, mix["cartao"])
}

func TestTopServicesOrderAndLimit(t *testing.T) {
	start := time.Now().UTC()
	aps := []models.Appointment{
		completed(1, 1, "corte", price(40), nil, start),
		completed(1, 2, "corte", price(40), nil, start),
		completed(1, 3, "corte", price(40), nil, start),
		completed(1, 4, "barba", price(25), nil, start),
		completed(1, 5, "barba", price(25), nil, start),
		completed(1, 6, "sobrancelha", price(15), nil, start),
	}

	top := TopServices(aps, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "corte", top[0].Service)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, 120.0, top[0].Revenue)
	assert.Equal(t, "barba", top[1].Service)
}

func TestRankBarbersByRevenue(t *testing.T) {
	start := time.Now().UTC()
	aps := []models.Appointment{
		completed(1, 10, "corte", price(40), nil, start),
		completed(1, 11, "corte", price(40), nil, start),
		completed(2, 10, "barba", price(100), nil, start),
		completed(2, 10, "barba", price(100), nil, start),
	}

	ranked := RankBarbers(aps, 5)
	require.Len(t, ranked, 2)
	assert.Equal(t, uint(2), ranked[0].BarberID)
	assert.Equal(t, 200.0, ranked[0].Revenue)
	assert.Equal(t, 1, ranked[0].DistinctClients)
	assert.Equal(t, uint(1), ranked[1].BarberID)
	assert.Equal(t, 2, ranked[1].DistinctClients)
}

func TestRankBarbersLimit(t *testing.T) {
	start := time.Now().UTC()
	var aps []models.Appointment
	for i := uint(1); i <= 8; i++ {
		aps = append(aps, completed(i, 1, "corte", price(float64(i)), nil, start))
	}

	ranked := RankBarbers(aps, 5)
	assert.Len(t, ranked, 5)
	assert.Equal(t, uint(8), ranked[0].BarberID)
}
