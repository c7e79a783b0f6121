package models

import "time"

// GalleryImage represents a photo on the salon's gallery page. The image
// itself lives in S3; only the key is stored here.
type GalleryImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	S3Key      string    `gorm:"not null" json:"-"`
	ImageURL   string    `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL
	UploadedAt time.Time `gorm:"not null" json:"uploaded_at"`
}

// TableName specifies the table name for the GalleryImage model
func (GalleryImage) TableName() string {
	return "gallery_images"
}
