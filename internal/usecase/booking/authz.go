package booking

import (
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/identity"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// authorize enforces ownership and tenant boundaries on appointment
// mutations: clients touch their own, barbers their own, managers anything
// inside their barbershop.
func authorize(p identity.Principal, ap *models.Appointment) error {
	switch p.Role {
	case models.RoleClient:
		if ap.ClientID == p.UserID {
			return nil
		}
	case models.RoleBarber:
		if ap.BarberID == p.UserID {
			return nil
		}
	case models.RoleManager:
		if ap.BarbershopID == p.BarbershopID {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}
