package dto

import "time"

// AppointmentView is the response shape for booking operations: ledger
// fields plus display names denormalized from the catalog.
type AppointmentView struct {
	ID            uint       `json:"id"`
	Reference     string     `json:"reference"`
	BarberID      uint       `json:"barber_id"`
	BarberName    string     `json:"barber_name"`
	ClientID      uint       `json:"client_id"`
	ClientName    string     `json:"client_name"`
	StartTime     time.Time  `json:"start_time"`
	Status        string     `json:"status"`
	ServiceType   string     `json:"service_type"`
	ServicePrice  *float64   `json:"service_price"`
	PaymentMethod *string    `json:"payment_method"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
