package stores

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/apperrors"
	"github.com/kavitha-salon/salon-api/models"
)

// GalleryStore persists gallery photo records. The photo bytes live in S3;
// this store only tracks titles and keys.
type GalleryStore struct {
	db *gorm.DB
}

// NewGalleryStore creates a GalleryStore backed by db.
func NewGalleryStore(db *gorm.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

// Create records an uploaded gallery photo.
func (s *GalleryStore) Create(title, s3Key string) (*models.GalleryImage, error) {
	if title == "" {
		return nil, apperrors.NewValidationError("title")
	}
	if s3Key == "" {
		return nil, apperrors.NewValidationError("s3_key")
	}

	image := models.GalleryImage{
		Title:      title,
		S3Key:      s3Key,
		UploadedAt: time.Now(),
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, fmt.Errorf("failed to save gallery image: %w", err)
	}
	return &image, nil
}

// ListAll returns every gallery photo, newest first.
func (s *GalleryStore) ListAll() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.db.Order("uploaded_at DESC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// GetByID fetches a single gallery photo record.
func (s *GalleryStore) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "gallery image", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch gallery image %d: %w", id, err)
	}
	return &image, nil
}

// Delete removes a gallery photo record.
func (s *GalleryStore) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.GalleryImage{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete gallery image %d: %w", id, err)
	}
	return nil
}
