package capability

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	ptypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
)

type PollySpeech struct {
	client *polly.Client
	voice  ptypes.VoiceId
}

func NewPollySpeech(cfg aws.Config, voice string) *PollySpeech {
	return &PollySpeech{
		client: polly.NewFromConfig(cfg),
		voice:  ptypes.VoiceId(voice),
	}
}

func (p *PollySpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	out, err := p.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: ptypes.OutputFormatMp3,
		VoiceId:      p.voice,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if out.AudioStream == nil {
		return nil, fmt.Errorf("synthesize speech: no audio stream returned")
	}
	defer out.AudioStream.Close()
	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}
	return audio, nil
}
