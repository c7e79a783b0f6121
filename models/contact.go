package models

import "time"

// ContactMessage represents a message submitted through the contact form.
// Messages are append-only: there is no update or delete path.
type ContactMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"not null;index" json:"submitted_at"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contacts"
}
