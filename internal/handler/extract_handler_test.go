package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paxscan/internal/domain"
	"paxscan/internal/handler"
	"paxscan/mocks"
)

func extractRouter(svc *mocks.MockExtractionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewExtractHandler(svc)
	r.POST("/api/v1/extract", h.Extract)
	r.POST("/api/v1/extract/s3", h.ExtractFromStorage)
	return r
}

func multipartImage(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, "pass.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestExtract_Success(t *testing.T) {
	svc := new(mocks.MockExtractionService)
	svc.On("ExtractImage", mock.Anything, mock.MatchedBy(func(img domain.ImageInput) bool {
		return string(img.Bytes) == "png-bytes"
	})).Return(&domain.BoardingPassRecord{FlightNumber: "6E6252", DepartureCode: "HYD"}, nil)

	body, contentType := multipartImage(t, "image", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	extractRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "6E6252", data["flight_number"])
	svc.AssertExpectations(t)
}

func TestExtract_MissingImageField(t *testing.T) {
	svc := new(mocks.MockExtractionService)

	body, contentType := multipartImage(t, "photo", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	extractRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_IMAGE", resp.Error.Code)
	svc.AssertNotCalled(t, "ExtractImage", mock.Anything, mock.Anything)
}

func TestExtract_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"exhausted", domain.ErrAllStrategiesExhausted, http.StatusUnprocessableEntity, "EXTRACTION_FAILED"},
		{"unsupported", domain.ErrUnsupportedContentType, http.StatusBadRequest, "UNSUPPORTED_CONTENT_TYPE"},
		{"too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.MockExtractionService)
			svc.On("ExtractImage", mock.Anything, mock.Anything).Return(nil, tc.err)

			body, contentType := multipartImage(t, "image", []byte("data"))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			extractRouter(svc).ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)
			resp := decodeEnvelope(t, w.Body)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestExtractFromStorage_Success(t *testing.T) {
	svc := new(mocks.MockExtractionService)
	svc.On("ExtractFromStorage", mock.Anything, "passes", "inbox/a.png").
		Return(&domain.BoardingPassRecord{FlightNumber: "UA546", ArrivalCode: "SFO"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/s3",
		strings.NewReader(`{"bucket":"passes","key":"inbox/a.png"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	extractRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestExtractFromStorage_MissingKey(t *testing.T) {
	svc := new(mocks.MockExtractionService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/s3",
		strings.NewReader(`{"bucket":"passes"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	extractRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	svc.AssertNotCalled(t, "ExtractFromStorage", mock.Anything, mock.Anything, mock.Anything)
}
