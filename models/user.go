package models

// User represents an account in the system (visitor or staff).
//
// Passwords are stored and compared as opaque strings for parity with the
// original site. The comparison lives entirely inside the account store, so
// hashing can be substituted there without touching call sites.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"is_admin"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
