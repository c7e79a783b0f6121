package apperrors

import "fmt"

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for a required field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NotFoundError reports an operation that referenced a nonexistent record.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// DuplicateUsernameError reports a registration conflict on the unique
// username column.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("username %q already exists", e.Username)
}

// AuthenticationError reports a credential or role mismatch. A wrong
// password and a non-admin logging into the admin panel produce the same
// error on purpose.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "invalid credentials"
}

// NotificationDeliveryError reports a failed notification send. It is
// non-fatal: the state change it accompanies has already been committed,
// so callers surface it as a warning rather than rolling back.
type NotificationDeliveryError struct {
	Recipient string
	Err       error
}

func (e *NotificationDeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver notification to %s: %v", e.Recipient, e.Err)
}

func (e *NotificationDeliveryError) Unwrap() error {
	return e.Err
}
