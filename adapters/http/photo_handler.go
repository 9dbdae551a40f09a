package http

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/photo"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

const maxPhotoSize = 5 << 20

type PhotoHandler struct {
	uploadUseCase  *photo.UploadPhotoUseCase
	replaceUseCase *photo.ReplacePhotoUseCase
	deleteUseCase  *photo.DeletePhotoUseCase
	logger         logger.Logger
}

func NewPhotoHandler(uploadUC *photo.UploadPhotoUseCase, replaceUC *photo.ReplacePhotoUseCase, deleteUC *photo.DeletePhotoUseCase, log logger.Logger) *PhotoHandler {
	return &PhotoHandler{
		uploadUseCase:  uploadUC,
		replaceUseCase: replaceUC,
		deleteUseCase:  deleteUC,
		logger:         log,
	}
}

// openPhoto validates the multipart "photo" field. The caller closes the file.
func (h *PhotoHandler) openPhoto(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.Error(apperror.NewInvalidInput("file 'photo' is required", err))
		return nil, false
	}
	if fileHeader.Size > maxPhotoSize {
		c.Error(apperror.NewInvalidInput("photo must not exceed 5MB", nil))
		return nil, false
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		c.Error(apperror.NewInvalidInput("photo must be an image", nil))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return nil, false
	}

	h.logger.Info("Receiving profile photo",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
	)
	return file, true
}

func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	file, ok := h.openPhoto(c)
	if !ok {
		return
	}
	defer file.Close()

	p, err := h.uploadUseCase.Execute(c.Request.Context(), photo.UploadPhotoInput{Ref: ref, File: file})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToPhotoDTO(p))
}

func (h *PhotoHandler) ReplacePhoto(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	photoID, ok := uuidParam(c, "photoId")
	if !ok {
		return
	}
	file, ok := h.openPhoto(c)
	if !ok {
		return
	}
	defer file.Close()

	p, err := h.replaceUseCase.Execute(c.Request.Context(), photo.ReplacePhotoInput{Ref: ref, PhotoID: photoID, File: file})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPhotoDTO(p))
}

func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	photoID, ok := uuidParam(c, "photoId")
	if !ok {
		return
	}
	if err := h.deleteUseCase.Execute(c.Request.Context(), ref, photoID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
