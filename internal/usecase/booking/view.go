package booking

import (
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/dto"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

func toView(ap *models.Appointment) dto.AppointmentView {
	return dto.AppointmentView{
		ID:            ap.ID,
		Reference:     ap.Reference,
		BarberID:      ap.BarberID,
		BarberName:    ap.Barber.Name,
		ClientID:      ap.ClientID,
		ClientName:    ap.Client.Name,
		StartTime:     ap.StartTime,
		Status:        ap.Status,
		ServiceType:   ap.ServiceType,
		ServicePrice:  ap.ServicePrice,
		PaymentMethod: ap.PaymentMethod,
		Notes:         ap.Notes,
		CreatedAt:     ap.CreatedAt,
		UpdatedAt:     ap.UpdatedAt,
		CancelledAt:   ap.CancelledAt,
		CompletedAt:   ap.CompletedAt,
	}
}
