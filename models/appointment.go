package models

// Appointment represents a booking request made through the booking form.
//
// Contact fields, the service description, and the requested date/slot are
// immutable after creation; there is no reschedule operation. The date is an
// opaque YYYY-MM-DD string and the slot an opaque time-window label; neither
// is parsed as a time type.
type Appointment struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Email       string  `gorm:"not null" json:"email"`
	Phone       string  `gorm:"not null" json:"phone"`
	Service     string  `gorm:"not null" json:"service"` // selected service names joined with ", "
	Date        string  `gorm:"not null;index:idx_appointments_date_slot" json:"date"`
	Slot        string  `gorm:"not null;index:idx_appointments_date_slot" json:"slot"`
	Completed   bool    `gorm:"not null;default:false" json:"completed"`
	TotalAmount float64 `gorm:"not null;default:0" json:"total_amount"` // priced once at creation
	AmountPaid  float64 `gorm:"not null;default:0" json:"amount_paid"`  // never validated against TotalAmount
	Confirmed   bool    `gorm:"not null;default:false" json:"confirmed"` // false covers both "not yet decided" and "cancelled"
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
