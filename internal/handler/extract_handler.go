package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"paxscan/internal/domain"
	"paxscan/internal/service"
)

// ExtractHandler handles boarding-pass extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// Extract handles POST /api/v1/extract
// @Summary Extract a boarding pass from an uploaded image
// @Description Runs the fallback extraction chain (remote vision model, on-device model, OCR patterns) over the uploaded image and returns the structured record of the first strategy that produces at least a flight number.
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Boarding-pass image (JPG or PNG)"
// @Success 200 {object} Response{data=domain.BoardingPassRecord} "Extracted boarding pass"
// @Failure 400 {object} ErrorResponseBody "Missing or unsupported image"
// @Failure 413 {object} ErrorResponseBody "Image too large"
// @Failure 422 {object} ErrorResponseBody "No strategy produced a usable record"
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_IMAGE", "image field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_IMAGE", "could not read uploaded image")
		return
	}

	rec, err := h.extractionService.ExtractImage(c.Request.Context(), domain.ImageInput{
		Bytes:       data,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// ExtractFromStorage handles POST /api/v1/extract/s3
// @Summary Extract a boarding pass from an object-store image
// @Description Downloads the referenced object from S3 and runs the fallback extraction chain over it. An empty bucket defaults to the configured one.
// @Tags extract
// @Accept json
// @Produce json
// @Param request body StorageExtractRequest true "Object reference"
// @Success 200 {object} Response{data=domain.BoardingPassRecord} "Extracted boarding pass"
// @Failure 400 {object} ErrorResponseBody "Missing key or unsupported image"
// @Failure 422 {object} ErrorResponseBody "No strategy produced a usable record"
// @Router /extract/s3 [post]
func (h *ExtractHandler) ExtractFromStorage(c *gin.Context) {
	var req StorageExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key field is required")
		return
	}

	rec, err := h.extractionService.ExtractFromStorage(c.Request.Context(), req.Bucket, req.Key)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}
