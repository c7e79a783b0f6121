package stores

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/apperrors"
	"github.com/kavitha-salon/salon-api/models"
	"github.com/kavitha-salon/salon-api/pricing"
)

// AppointmentStore owns all appointment records. Every read and write goes
// through the injected database handle; no other component keeps a copy of
// an appointment between operations.
type AppointmentStore struct {
	db *gorm.DB
}

// NewAppointmentStore creates an AppointmentStore backed by db.
func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// Create validates the booking form fields, prices the selected services,
// and persists a new pending appointment. The service description is the
// selected names joined with ", " and the total is fixed at creation time.
// Booking with no services selected is rejected.
func (s *AppointmentStore) Create(name, email, phone string, serviceNames []string, date, slot string) (*models.Appointment, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", name},
		{"email", email},
		{"phone", phone},
		{"date", date},
		{"slot", slot},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, apperrors.NewValidationError(r.field)
		}
	}
	if len(serviceNames) == 0 {
		return nil, &apperrors.ValidationError{
			Field:   "services",
			Message: "at least one service must be selected",
		}
	}

	appointment := models.Appointment{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Service:     strings.Join(serviceNames, ", "),
		Date:        date,
		Slot:        slot,
		Completed:   false,
		TotalAmount: pricing.TotalPrice(serviceNames),
		AmountPaid:  0,
		Confirmed:   false,
	}

	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

// ListAll returns every appointment ordered by requested date, then slot.
func (s *AppointmentStore) ListAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Order("date, slot").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// GetByID fetches a single appointment.
func (s *AppointmentStore) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "appointment", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch appointment %d: %w", id, err)
	}
	return &appointment, nil
}

// SetCompleted toggles the completed flag. The flag is independent of the
// confirmed axis and of payment; setting it to its current value is fine.
func (s *AppointmentStore) SetCompleted(id uint, completed bool) error {
	return s.updateField(id, "completed", completed)
}

// SetAmountPaid records a payment amount. There is deliberately no range
// check against the appointment's total: overpayment and underpayment are
// both representable.
func (s *AppointmentStore) SetAmountPaid(id uint, amount float64) error {
	return s.updateField(id, "amount_paid", amount)
}

// SetConfirmed updates the confirmed flag and returns the updated record so
// the lifecycle can build the notification from it.
func (s *AppointmentStore) SetConfirmed(id uint, confirmed bool) (*models.Appointment, error) {
	if err := s.updateField(id, "confirmed", confirmed); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *AppointmentStore) updateField(id uint, column string, value interface{}) error {
	// Existence is checked first so updating a field to its current value
	// still succeeds while a missing id is reported as not found.
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	result := s.db.Model(&models.Appointment{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("failed to update appointment %d: %w", id, result.Error)
	}
	return nil
}
