package capability

import "context"

// BlockTypeLine tags line-level fragments in OCR output. Other granularities
// (words, pages, tables) are ignored by consumers.
const BlockTypeLine = "LINE"

type TextBlock struct {
	Text      string
	BlockType string
}

// OCRClient extracts positioned text blocks from document or image bytes.
type OCRClient interface {
	DetectText(ctx context.Context, data []byte) ([]TextBlock, error)
}
