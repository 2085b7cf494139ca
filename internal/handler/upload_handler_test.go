package handler_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ainable/backend/internal/capability"
	appErr "github.com/ainable/backend/internal/pkg/errors"
)

func TestUploadExtractsLineText(t *testing.T) {
	caps := defaultCapabilities()
	router := setupRouter(t, caps)

	resp := postFile(t, router, "notes.jpg", bytes.Repeat([]byte{0xd8}, 10*1024))
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody(t, resp)
	require.Equal(t, "File processed successfully", body["message"])
	require.Equal(t, "The water cycle moves water around the planet", body["extracted_text"])
	require.Equal(t, "notes.jpg", body["file_name"])
	require.Equal(t, ".jpg", body["file_type"])
	require.Equal(t, 1, caps.ocr.calls)
}

func TestUploadMissingFile(t *testing.T) {
	router := setupRouter(t, defaultCapabilities())

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUploadOversizeRejectedBeforeOCR(t *testing.T) {
	caps := defaultCapabilities()
	router := setupRouter(t, caps)

	resp := postFile(t, router, "huge.pdf", bytes.Repeat([]byte{0x1}, 2*1024*1024))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "file_too_large", errorCode(t, resp))
	require.Zero(t, caps.ocr.calls)
}

func TestUploadBadExtensionRejected(t *testing.T) {
	caps := defaultCapabilities()
	router := setupRouter(t, caps)

	resp := postFile(t, router, "notes.txt", []byte("plain text content"))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "file_type_not_allowed", errorCode(t, resp))
	require.Zero(t, caps.ocr.calls)
}

func TestUploadNoTextFound(t *testing.T) {
	caps := defaultCapabilities()
	caps.ocr.blocks = []capability.TextBlock{
		{Text: "  ", BlockType: capability.BlockTypeLine},
	}
	router := setupRouter(t, caps)

	resp := postFile(t, router, "blank.png", []byte("image data"))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "no_text_found", errorCode(t, resp))
}

func TestUploadOCRFailureTranslation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unsupported format", fmt.Errorf("%w: mock", appErr.ErrUnsupportedFormat), http.StatusBadRequest, "unsupported_format"},
		{"document too large", fmt.Errorf("%w: mock", appErr.ErrDocumentTooLarge), http.StatusBadRequest, "document_too_large"},
		{"corrupt document", fmt.Errorf("%w: mock", appErr.ErrCorruptDocument), http.StatusBadRequest, "corrupt_document"},
		{"anything else", fmt.Errorf("socket timeout to internal host 10.0.0.9"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := defaultCapabilities()
			caps.ocr.err = tt.err
			router := setupRouter(t, caps)

			resp := postFile(t, router, "doc.pdf", []byte("data"))
			require.Equal(t, tt.wantStatus, resp.Code)
			require.Equal(t, tt.wantCode, errorCode(t, resp))
			require.NotContains(t, resp.Body.String(), "10.0.0.9")
		})
	}
}
