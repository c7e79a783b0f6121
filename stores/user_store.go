package stores

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/apperrors"
	"github.com/kavitha-salon/salon-api/models"
)

// UserStore persists accounts and performs the credential check. Passwords
// are compared by plain equality for parity with the original site; swapping
// in hashing only requires changing Register and Authenticate here.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore backed by db.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a non-admin account. Username uniqueness is enforced at
// the store level, checked before insert so the caller gets a typed error
// instead of a driver-specific constraint violation.
func (s *UserStore) Register(username, password string) (*models.User, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password")
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, &apperrors.DuplicateUsernameError{Username: username}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := models.User{
		Username: username,
		Password: password,
		IsAdmin:  false,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate looks up an account matching the credentials and the admin
// flag exactly. A wrong password, an unknown username, and an admin-flag
// mismatch are all reported as the same AuthenticationError.
func (s *UserStore) Authenticate(username, password string, requireAdmin bool) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? AND password = ? AND is_admin = ?", username, password, requireAdmin).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.AuthenticationError{}
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// SeedAdmin ensures the configured admin account exists. Admins are only
// ever pre-seeded; registration always produces non-admin accounts.
func (s *UserStore) SeedAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	admin := models.User{
		Username: username,
		Password: password,
		IsAdmin:  true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	return nil
}
