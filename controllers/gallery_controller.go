package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kavitha-salon/salon-api/services"
	"github.com/kavitha-salon/salon-api/stores"
	"github.com/kavitha-salon/salon-api/utils"
)

// GalleryController handles the salon's photo gallery. Reads are public;
// uploads and deletes are staff-only.
type GalleryController struct {
	gallery *stores.GalleryStore
	images  services.ImageService
}

// NewGalleryController creates a GalleryController over the given
// collaborators.
func NewGalleryController(gallery *stores.GalleryStore, images services.ImageService) *GalleryController {
	return &GalleryController{
		gallery: gallery,
		images:  images,
	}
}

// ListGallery handles GET /api/v1/gallery - all photos, newest first, with
// presigned URLs
func (ctrl *GalleryController) ListGallery(c *gin.Context) {
	photos, err := ctrl.gallery.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range photos {
		url, err := ctrl.images.GetImageURL(photos[i].S3Key)
		if err != nil {
			// A single bad key should not hide the whole gallery.
			continue
		}
		photos[i].ImageURL = url
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    photos,
	})
}

// UploadGalleryImage handles POST /api/v1/admin/gallery - uploads a photo
// (multipart form: title, image)
func (ctrl *GalleryController) UploadGalleryImage(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "title is required",
			},
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "image file is required",
			},
		})
		return
	}

	s3Key, err := ctrl.images.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to upload image",
			},
		})
		return
	}

	photo, err := ctrl.gallery.Create(title, s3Key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    photo,
	})
}

// DeleteGalleryImage handles DELETE /api/v1/admin/gallery/:id - removes a
// photo from storage and the gallery
func (ctrl *GalleryController) DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Gallery image ID must be a number",
			},
		})
		return
	}

	photo, err := ctrl.gallery.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.images.DeleteImage(photo.S3Key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": "Failed to delete image from storage",
			},
		})
		return
	}

	if err := ctrl.gallery.Delete(photo.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery image deleted",
	})
}
