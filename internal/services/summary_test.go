package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComposeSummaryTrimsResponse(t *testing.T) {
	gemini := &fakeGemini{respond: func(string) (string, error) {
		return "\nA strong candidate with minor certification gaps.\n", nil
	}}

	composer := NewSummaryComposer(gemini, zap.NewNop())
	summary, err := composer.ComposeSummary(context.Background(),
		"exceeds the experience bar",
		"core skills fully covered",
		"degree requirement met",
	)

	require.NoError(t, err)
	assert.Equal(t, "A strong candidate with minor certification gaps.", summary)
}

func TestComposeSummaryIncludesAllRationales(t *testing.T) {
	gemini := &fakeGemini{respond: func(string) (string, error) {
		return "ok", nil
	}}

	composer := NewSummaryComposer(gemini, zap.NewNop())
	_, err := composer.ComposeSummary(context.Background(),
		"exceeds the experience bar",
		"core skills fully covered",
		"degree requirement met",
	)
	require.NoError(t, err)

	calls := gemini.calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "exceeds the experience bar")
	assert.Contains(t, calls[0], "core skills fully covered")
	assert.Contains(t, calls[0], "degree requirement met")
}

func TestComposeSummaryPropagatesGatewayError(t *testing.T) {
	gatewayErr := errors.New("gateway unavailable")
	gemini := &fakeGemini{respond: func(string) (string, error) {
		return "", gatewayErr
	}}

	composer := NewSummaryComposer(gemini, zap.NewNop())
	summary, err := composer.ComposeSummary(context.Background(), "a", "b", "c")

	require.Error(t, err)
	assert.ErrorIs(t, err, gatewayErr)
	assert.Empty(t, summary)
}
