package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/model"
	appErr "github.com/ainable/backend/internal/pkg/errors"
)

type IntakeService struct {
	ocr      capability.OCRClient
	maxBytes int64
	allowed  map[string]struct{}
}

func NewIntakeService(ocr capability.OCRClient, maxBytes int64, allowedExtensions []string) *IntakeService {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &IntakeService{ocr: ocr, maxBytes: maxBytes, allowed: allowed}
}

// Extract validates the upload and runs it through text detection once.
// Validation failures never reach the OCR capability.
func (s *IntakeService) Extract(ctx context.Context, filename string, data []byte) (model.Extraction, error) {
	if int64(len(data)) > s.maxBytes {
		return model.Extraction{}, fmt.Errorf("%w: %d bytes over %d limit", appErr.ErrFileTooLarge, len(data), s.maxBytes)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := s.allowed[ext]; !ok {
		return model.Extraction{}, fmt.Errorf("%w: %s", appErr.ErrFileType, ext)
	}

	blocks, err := s.ocr.DetectText(ctx, data)
	if err != nil {
		if appErr.IsClientFault(err) {
			return model.Extraction{}, err
		}
		logutil.GetLogger(ctx).Error("ocr capability call failed",
			zap.String("file_name", filename), zap.Int("size", len(data)), zap.Error(err))
		return model.Extraction{}, fmt.Errorf("detect text: %w", appErr.ErrCapability)
	}

	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.BlockType == capability.BlockTypeLine {
			lines = append(lines, block.Text)
		}
	}
	text := strings.Join(lines, " ")
	if strings.TrimSpace(text) == "" {
		return model.Extraction{}, fmt.Errorf("%w: %s", appErr.ErrNoTextFound, filename)
	}
	return model.Extraction{
		Text:     text,
		FileName: filename,
		FileType: ext,
	}, nil
}
