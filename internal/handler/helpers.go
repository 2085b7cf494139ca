package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/ainable/backend/internal/pkg/errors"
	"github.com/ainable/backend/internal/pkg/response"
)

// handleError translates the error taxonomy to a status, machine code, and
// user-facing message. Anything unrecognized is logged with full detail and
// surfaced as a generic server error; internal text never reaches the client.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrFileTooLarge):
		response.Error(c, http.StatusBadRequest, "file_too_large", "File size exceeds the configured upload limit.")
	case errors.Is(err, appErr.ErrFileType):
		response.Error(c, http.StatusBadRequest, "file_type_not_allowed", "Unsupported file type. Upload a PDF, JPG, JPEG, or PNG document.")
	case errors.Is(err, appErr.ErrNoTextFound):
		response.Error(c, http.StatusBadRequest, "no_text_found", "No readable text was found in the document.")
	case errors.Is(err, appErr.ErrUnsupportedFormat):
		response.Error(c, http.StatusBadRequest, "unsupported_format", "The document format could not be processed. Convert it to PDF, JPG, or PNG and try again.")
	case errors.Is(err, appErr.ErrDocumentTooLarge):
		response.Error(c, http.StatusBadRequest, "document_too_large", "The document is too large for text detection. Upload a smaller file or reduce the resolution.")
	case errors.Is(err, appErr.ErrCorruptDocument):
		response.Error(c, http.StatusBadRequest, "corrupt_document", "The document could not be read. It may be damaged or password protected.")
	case errors.Is(err, appErr.ErrPromptRejected):
		response.Error(c, http.StatusBadRequest, "prompt_rejected", "The text could not be illustrated. It may be too long or contain unsafe content.")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	default:
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "internal", "Something went wrong while processing the request. Please try again later.")
	}
}
