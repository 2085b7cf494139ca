package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/ainable/backend/internal/pkg/errors"
)

func TestAskEmbedsContextAndQuestion(t *testing.T) {
	gen := &fakeGenerator{output: "  The sun heats the water.  "}
	svc := NewQAService(gen, 1024, 0)

	result, err := svc.Ask(context.Background(), "The water cycle has three stages.", "What starts the cycle?")
	require.NoError(t, err)
	require.Equal(t, "What starts the cycle?", result.Question)
	require.Equal(t, "The sun heats the water.", result.Answer)

	require.Len(t, gen.prompts, 1)
	require.Contains(t, gen.prompts[0], "The water cycle has three stages.")
	require.Contains(t, gen.prompts[0], "What starts the cycle?")
	require.Contains(t, gen.prompts[0], "tutor")
}

func TestAskEmptyQuestionRejected(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewQAService(gen, 1024, 0)

	_, err := svc.Ask(context.Background(), "some context", "  ")
	require.ErrorIs(t, err, appErr.ErrInvalid)
	require.Empty(t, gen.prompts)
}

func TestAskEmptyContextAllowed(t *testing.T) {
	gen := &fakeGenerator{output: "A general answer."}
	svc := NewQAService(gen, 1024, 0)

	result, err := svc.Ask(context.Background(), "", "Why is the sky blue?")
	require.NoError(t, err)
	require.Equal(t, "A general answer.", result.Answer)
}

func TestAskGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model endpoint 500")}
	svc := NewQAService(gen, 1024, 0)

	_, err := svc.Ask(context.Background(), "ctx", "question?")
	require.ErrorIs(t, err, appErr.ErrCapability)
	require.NotContains(t, err.Error(), "model endpoint 500")
}
