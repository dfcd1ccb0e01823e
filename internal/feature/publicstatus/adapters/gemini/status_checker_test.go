package gemini_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/feature/publicstatus/adapters/gemini"
	"portfolio_backend/internal/feature/publicstatus/domain/entity"
	"portfolio_backend/internal/feature/publicstatus/usecase"
)

// mockTextGenerator はTextGeneratorインターフェースのモック実装です。
type mockTextGenerator struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)
	Prompts          []string
}

func (m *mockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.GenerateTextFunc(ctx, prompt)
}

func TestParseListingStatus(t *testing.T) {
	tests := []struct {
		answer string
		want   entity.ListingStatus
	}{
		{"Yes", entity.StatusPublic},
		{" yes.\n", entity.StatusPublic},
		{"YES, it trades on NASDAQ", entity.StatusPublic},
		{"No", entity.StatusPrivate},
		{"no.", entity.StatusPrivate},
		{"Yesterday it was not", entity.StatusUnknown},
		{"Nothing to say", entity.StatusUnknown},
		{"", entity.StatusUnknown},
		{"I am not sure", entity.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, gemini.ParseListingStatus(tt.answer))
		})
	}
}

func TestStatusChecker_CheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: prompt embeds the company name", func(t *testing.T) {
		gen := &mockTextGenerator{GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "Yes", nil
		}}

		status, err := gemini.NewStatusChecker(gen).CheckStatus(ctx, "Acme AI")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPublic, status)
		require.Len(t, gen.Prompts, 1)
		assert.True(t, strings.HasPrefix(gen.Prompts[0], "Is Acme AI a publicly traded company as of today?"))
		assert.Contains(t, gen.Prompts[0], "ONLY 'Yes' or 'No'")
	})

	t.Run("error: api error is wrapped and status unknown", func(t *testing.T) {
		apiErr := errors.New("api error")
		gen := &mockTextGenerator{GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", apiErr
		}}

		status, err := gemini.NewStatusChecker(gen).CheckStatus(ctx, "Acme AI")

		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrModelCallFailed)
		assert.ErrorIs(t, err, apiErr)
		assert.Equal(t, entity.StatusUnknown, status)
	})
}
