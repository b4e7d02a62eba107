package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"carrental/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles car image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadCarImage handles POST /api/car/upload-image. The multipart file
// is staged on disk because the Cloudinary SDK uploads by path.
func (h *StorageHandler) UploadCarImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	url, publicID, err := h.StorageSvc.UploadImage(c, tempFilePath, "cars")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": url,
		"publicId": publicID,
	})
}
