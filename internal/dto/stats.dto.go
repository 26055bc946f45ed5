package dto

import (
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/stats"
)

type StatsOverview struct {
	Period      string    `json:"period"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`

	ConfirmedCount int `json:"confirmed_count"`
	CancelledCount int `json:"cancelled_count"`
	CompletedCount int `json:"completed_count"`

	Revenue         float64 `json:"revenue"`
	DistinctClients int     `json:"distinct_clients"`

	DailyBreakdown   [7]int         `json:"daily_breakdown"`
	PaymentMethodMix map[string]int `json:"payment_method_mix"`

	TopServices []stats.ServiceStat `json:"top_services"`
	TopBarbers  []stats.BarberStat  `json:"top_barbers"`
}
