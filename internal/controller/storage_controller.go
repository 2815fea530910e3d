package controller

import (
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StorageController struct {
	StorageService *service.StorageService
}

func NewStorageController(storageService *service.StorageService) *StorageController {
	return &StorageController{StorageService: storageService}
}

// UploadFile godoc
// @Summary Upload an attachment
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File"
// @Success 201 {object} util.Response
// @Router /api/uploads [post]
func (ctrl *StorageController) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	result, err := ctrl.StorageService.UploadFile(c.Request.Context(), file, "attachments")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, result)
}

// UploadMedia godoc
// @Summary Upload quiz media
// @Description Stores a video or audio file and returns its URL with the probed duration in seconds
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Media file"
// @Success 201 {object} util.Response
// @Router /api/uploads/media [post]
func (ctrl *StorageController) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	result, err := ctrl.StorageService.UploadMedia(c.Request.Context(), file, "media")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.Created(c, result)
}
