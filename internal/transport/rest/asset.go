package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookbarber/internal/service"
)

// @Summary Upload a shop or service image
// @Description Stores the image and returns the URL to reference from appointment records
// @Tags Assets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} successResponseBody "Uploaded image URL"
// @Failure 400 {object} errorResponseBody "Missing or unreadable file"
// @Failure 503 {object} errorResponseBody "File storage not configured"
// @Router /assets [post]
func (h *Handler) uploadAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "missing file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Warn("opening uploaded file", zap.Error(err))
		badRequestResponse(c, "unreadable file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("reading uploaded file", zap.Error(err))
		badRequestResponse(c, "unreadable file")
		return
	}

	url, err := h.services.Asset.Upload(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			serviceUnavailableResponse(c, "file storage is not configured")
			return
		}
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"url": url})
}

// @Summary Delete an uploaded image
// @Tags Assets
// @Produce json
// @Param url query string true "Image URL"
// @Success 200 {object} messageResponseType "Deleted"
// @Failure 400 {object} errorResponseBody "Missing or malformed URL"
// @Failure 503 {object} errorResponseBody "File storage not configured"
// @Router /assets [delete]
func (h *Handler) deleteAsset(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		badRequestResponse(c, "missing url")
		return
	}

	if err := h.services.Asset.Delete(c.Request.Context(), url); err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			serviceUnavailableResponse(c, "file storage is not configured")
			return
		}
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "image deleted")
}
