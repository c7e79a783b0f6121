package stores

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/apperrors"
	"github.com/kavitha-salon/salon-api/models"
)

// ContactStore persists visitor messages. The table is append-only: there is
// no update or delete operation.
type ContactStore struct {
	db *gorm.DB
}

// NewContactStore creates a ContactStore backed by db.
func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Submit validates and persists a contact form message, stamping it with the
// server's current time.
func (s *ContactStore) Submit(name, email, message string) (*models.ContactMessage, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", name},
		{"email", email},
		{"message", message},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, apperrors.NewValidationError(r.field)
		}
	}

	contact := models.ContactMessage{
		Name:        name,
		Email:       email,
		Message:     message,
		SubmittedAt: time.Now(),
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return &contact, nil
}

// ListAll returns every message, newest first.
func (s *ContactStore) ListAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.db.Order("submitted_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
