package capability

import "context"

// SpeechSynthesizer renders text as spoken audio and returns the raw bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
