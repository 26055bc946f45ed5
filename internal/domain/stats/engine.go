package stats

import (
	"sort"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// Pure aggregation over a window of ledger rows. Everything here is
// recomputed per call from the slice the repository fetched; no state,
// no caching.

func CountByStatus(aps []models.Appointment, status booking.Status) int {
	n := 0
	for _, ap := range aps {
		if booking.Status(ap.Status) == status {
			n++
		}
	}
	return n
}

// SumRevenue adds service_price over completed appointments. A nil price
// counts as zero.
func SumRevenue(aps []models.Appointment) float64 {
	var total float64
	for _, ap := range aps {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		if ap.ServicePrice != nil {
			total += *ap.ServicePrice
		}
	}
	return total
}

func DistinctClientCount(aps []models.Appointment) int {
	seen := make(map[uint]struct{}, len(aps))
	for _, ap := range aps {
		seen[ap.ClientID] = struct{}{}
	}
	return len(seen)
}

// DailyBreakdown counts completed appointments per weekday, Monday-first.
func DailyBreakdown(aps []models.Appointment) [7]int {
	var days [7]int
	for _, ap := range aps {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		idx := (int(ap.StartTime.UTC().Weekday()) + 6) % 7
		days[idx]++
	}
	return days
}

// PaymentMethodMix returns the integer percentage of completed appointments
// per payment method (count*100/total). All requested methods are present
// in the result, zero-valued when the window has no completed appointments.
func PaymentMethodMix(aps []models.Appointment, methods []string) map[string]int {
	mix := make(map[string]int, len(methods))
	for _, m := range methods {
		mix[m] = 0
	}

	counts := map[string]int{}
	total := 0
	for _, ap := range aps {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		total++
		if ap.PaymentMethod != nil && *ap.PaymentMethod != "" {
			counts[*ap.PaymentMethod]++
		}
	}

	if total == 0 {
		return mix
	}

	for method, n := range counts {
		mix[method] = n * 100 / total
	}
	return mix
}

type ServiceStat struct {
	Service string  `json:"service"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// TopServices groups completed appointments by service_type, ordered by
// count descending. Tie order among equal counts is not specified.
func TopServices(aps []models.Appointment, limit int) []ServiceStat {
	byService := map[string]*ServiceStat{}
	for _, ap := range aps {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		st, ok := byService[ap.ServiceType]
		if !ok {
			st = &ServiceStat{Service: ap.ServiceType}
			byService[ap.ServiceType] = st
		}
		st.Count++
		if ap.ServicePrice != nil {
			st.Revenue += *ap.ServicePrice
		}
	}

	out := make([]ServiceStat, 0, len(byService))
	for _, st := range byService {
		out = append(out, *st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type BarberStat struct {
	BarberID        uint    `json:"barber_id"`
	Name            string  `json:"name"`
	Revenue         float64 `json:"revenue"`
	DistinctClients int     `json:"distinct_clients"`
}

// RankBarbers groups completed appointments by barber, ordered by revenue
// descending.
func RankBarbers(aps []models.Appointment, limit int) []BarberStat {
	type acc struct {
		stat    BarberStat
		clients map[uint]struct{}
	}

	byBarber := map[uint]*acc{}
	for _, ap := range aps {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		a, ok := byBarber[ap.BarberID]
		if !ok {
			a = &acc{
				stat:    BarberStat{BarberID: ap.BarberID, Name: ap.Barber.Name},
				clients: map[uint]struct{}{},
			}
			byBarber[ap.BarberID] = a
		}
		if ap.ServicePrice != nil {
			a.stat.Revenue += *ap.ServicePrice
		}
		a.clients[ap.ClientID] = struct{}{}
	}

	out := make([]BarberStat, 0, len(byBarber))
	for _, a := range byBarber {
		a.stat.DistinctClients = len(a.clients)
		out = append(out, a.stat)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
