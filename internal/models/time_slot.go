package models

import "time"

// TimeSlot is one (barber, instant) pair a barber has opened for booking.
// StartTime is stored normalized to UTC; the pair is unique per barber.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"uniqueIndex:ux_time_slots_barber_start" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"uniqueIndex:ux_time_slots_barber_start" json:"start_time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
}
