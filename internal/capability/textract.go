package capability

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	ttypes "github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/aws/smithy-go"

	appErr "github.com/ainable/backend/internal/pkg/errors"
)

type TextractOCR struct {
	client *textract.Client
}

func NewTextractOCR(cfg aws.Config) *TextractOCR {
	return &TextractOCR{client: textract.NewFromConfig(cfg)}
}

func (t *TextractOCR) DetectText(ctx context.Context, data []byte) ([]TextBlock, error) {
	out, err := t.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &ttypes.Document{Bytes: data},
	})
	if err != nil {
		return nil, translateTextractError(err)
	}
	blocks := make([]TextBlock, 0, len(out.Blocks))
	for _, block := range out.Blocks {
		blocks = append(blocks, TextBlock{
			Text:      aws.ToString(block.Text),
			BlockType: string(block.BlockType),
		})
	}
	return blocks, nil
}

func translateTextractError(err error) error {
	var unsupported *ttypes.UnsupportedDocumentException
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%w: %v", appErr.ErrUnsupportedFormat, err)
	}
	var tooLarge *ttypes.DocumentTooLargeException
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %v", appErr.ErrDocumentTooLarge, err)
	}
	var bad *ttypes.BadDocumentException
	if errors.As(err, &bad) {
		return fmt.Errorf("%w: %v", appErr.ErrCorruptDocument, err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("textract %s: %w", apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("detect document text: %w", err)
}
