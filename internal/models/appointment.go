package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Opaque code handed to clients instead of the dense integer id.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	// Denormalized from the barber at creation time, immutable afterwards.
	BarbershopID uint       `gorm:"index:idx_appointments_shop_start" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint `gorm:"index:idx_appointments_barber_start" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// UTC instant of the reserved slot.
	StartTime time.Time `gorm:"index:idx_appointments_barber_start;index:idx_appointments_shop_start" json:"start_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	ServiceType   string   `gorm:"size:100" json:"service_type"`
	ServicePrice  *float64 `json:"service_price"`
	PaymentMethod *string  `gorm:"size:30" json:"payment_method"`
	Notes         string   `gorm:"size:255" json:"notes"`

	// Back-reference to the originating slot; nil when the slot was removed later.
	SlotID *uint `json:"slot_id"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
