package migrations

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/models"
)

// Migration is one schema change, applied at most once. Ordering follows the
// position in the list returned by All; versions already present in the
// schema_migrations table are skipped, and any other failure aborts startup.
type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
}

// MigrationRecord tracks which migrations have been applied.
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the MigrationRecord model
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// All returns the ordered migration list.
func All() []Migration {
	return []Migration{
		{
			Version: "001",
			Name:    "create_users",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.User{})
			},
		},
		{
			Version: "002",
			Name:    "create_appointments",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.Appointment{})
			},
		},
		{
			Version: "003",
			Name:    "create_contacts",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.ContactMessage{})
			},
		},
		{
			Version: "004",
			Name:    "create_gallery_images",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.GalleryImage{})
			},
		},
	}
}

// Apply runs every pending migration in order and records each one in the
// schema_migrations table. Calling it again is a no-op.
func Apply(db *gorm.DB) error {
	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, migration := range All() {
		if applied[migration.Version] {
			continue
		}

		if err := migration.Up(db); err != nil {
			return fmt.Errorf("migration %s_%s failed: %w", migration.Version, migration.Name, err)
		}

		record := MigrationRecord{
			Version:   migration.Version,
			Name:      migration.Name,
			AppliedAt: time.Now(),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
		}
	}
	return nil
}

func appliedVersions(db *gorm.DB) (map[string]bool, error) {
	var records []MigrationRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}

	versions := make(map[string]bool, len(records))
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}
