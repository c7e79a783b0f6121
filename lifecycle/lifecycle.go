package lifecycle

import (
	"fmt"

	"github.com/kavitha-salon/salon-api/apperrors"
	"github.com/kavitha-salon/salon-api/models"
	"github.com/kavitha-salon/salon-api/notify"
	"github.com/kavitha-salon/salon-api/stores"
)

// Lifecycle drives the confirm/cancel decision on an appointment. It never
// holds its own copy of a record: every transition writes through the
// appointment store and works with what the store returns.
type Lifecycle struct {
	appointments *stores.AppointmentStore
	notifier     notify.Notifier
}

// New creates a Lifecycle over the given store and notifier.
func New(appointments *stores.AppointmentStore, notifier notify.Notifier) *Lifecycle {
	return &Lifecycle{
		appointments: appointments,
		notifier:     notifier,
	}
}

// Decide applies the staff confirm/cancel decision and emails the visitor.
//
// The stored confirmed flag is updated first; only then is the notification
// composed and sent. A delivery failure comes back as a
// *apperrors.NotificationDeliveryError together with the updated
// appointment; the state change is already durable and is never rolled
// back. Any other error means the transition itself did not happen.
func (l *Lifecycle) Decide(id uint, confirmed bool) (*models.Appointment, error) {
	appointment, err := l.appointments.SetConfirmed(id, confirmed)
	if err != nil {
		return nil, err
	}

	subject, body := composeDecisionEmail(appointment)
	if err := l.notifier.Send(appointment.Email, subject, body); err != nil {
		return appointment, &apperrors.NotificationDeliveryError{
			Recipient: appointment.Email,
			Err:       err,
		}
	}
	return appointment, nil
}

func composeDecisionEmail(appointment *models.Appointment) (subject, body string) {
	if appointment.Confirmed {
		subject = "Your Booking is Confirmed!"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour booking for %s on %s at %s is confirmed!\nWe look forward to welcoming you.\n\nThank you for choosing Kavitha Beauty Salon!\n\nBest wishes,\nKavitha Beauty Salon Team",
			appointment.Name, appointment.Service, appointment.Date, appointment.Slot)
		return subject, body
	}

	subject = "Your Booking has been Cancelled"
	body = fmt.Sprintf(
		"Dear %s,\n\nYour booking for %s on %s at %s has been cancelled.\nIf this is unexpected, please contact us and we will be happy to help you rebook.\n\nBest wishes,\nKavitha Beauty Salon Team",
		appointment.Name, appointment.Service, appointment.Date, appointment.Slot)
	return subject, body
}
