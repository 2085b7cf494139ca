package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ainable/backend/internal/pkg/response"
	"github.com/ainable/backend/internal/service"
)

type UploadHandler struct {
	intake *service.IntakeService
}

func NewUploadHandler(intake *service.IntakeService) *UploadHandler {
	return &UploadHandler{intake: intake}
}

type UploadResponse struct {
	Message       string `json:"message"`
	ExtractedText string `json:"extracted_text"`
	FileName      string `json:"file_name"`
	FileType      string `json:"file_type"`
}

func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "file is required")
		return
	}
	opened, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "failed to open file")
		return
	}
	defer opened.Close()
	data, err := io.ReadAll(opened)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "failed to read file")
		return
	}

	result, err := h.intake.Extract(c.Request.Context(), file.Filename, data)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, UploadResponse{
		Message:       "File processed successfully",
		ExtractedText: result.Text,
		FileName:      result.FileName,
		FileType:      result.FileType,
	})
}
