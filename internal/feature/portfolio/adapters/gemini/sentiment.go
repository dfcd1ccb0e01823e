package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
)

// SentimentPromptTemplate は2値感情分類のプロンプトです。
const SentimentPromptTemplate = `Classify the sentiment of the following company description as POSITIVE or NEGATIVE.
Respond with a JSON object of the form {"label": "POSITIVE" | "NEGATIVE", "score": <confidence between 0 and 1>}.

Description:
%s`

// GeminiSentiment は生成モデルのJSONモードで感情分類を行います。
type GeminiSentiment struct {
	gen Generator
}

var _ usecase.SentimentClassifier = (*GeminiSentiment)(nil)

// NewGeminiSentiment はGeminiSentimentの新しいインスタンスを生成します。
func NewGeminiSentiment(gen Generator) *GeminiSentiment {
	return &GeminiSentiment{gen: gen}
}

// Classify は説明文の感情ラベルと確信度を返します。
func (s *GeminiSentiment) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	raw, err := s.gen.GenerateJSON(ctx, fmt.Sprintf(SentimentPromptTemplate, text))
	if err != nil {
		return entity.Sentiment{}, fmt.Errorf("%w: sentiment: %w", usecase.ErrModelCallFailed, err)
	}
	return ParseSentiment(raw)
}

type sentimentPayload struct {
	Label string   `json:"label"`
	Score *float64 `json:"score"`
}

// ParseSentiment はモデルのJSON回答をSentimentに変換します。
// 壊れたJSONはjsonrepairで修復してから再度パースします。
func ParseSentiment(raw string) (entity.Sentiment, error) {
	content := stripCodeFence(raw)

	var p sentimentPayload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return entity.Sentiment{}, fmt.Errorf("%w: sentiment response %q: %w", usecase.ErrSchemaMismatch, raw, err)
		}
		if err := json.Unmarshal([]byte(repaired), &p); err != nil {
			return entity.Sentiment{}, fmt.Errorf("%w: sentiment response %q: %w", usecase.ErrSchemaMismatch, raw, err)
		}
	}

	label := strings.ToUpper(strings.TrimSpace(p.Label))
	if label != "POSITIVE" && label != "NEGATIVE" {
		return entity.Sentiment{}, fmt.Errorf("%w: unexpected sentiment label %q", usecase.ErrSchemaMismatch, p.Label)
	}
	if p.Score == nil || *p.Score < 0 || *p.Score > 1 {
		return entity.Sentiment{}, fmt.Errorf("%w: sentiment score missing or out of range", usecase.ErrSchemaMismatch)
	}
	return entity.Sentiment{Label: label, Score: *p.Score}, nil
}

// stripCodeFence はモデルが付与する ```json ... ``` の囲みを取り除きます。
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
