package gemini

import (
	"context"
	"fmt"

	"portfolio_backend/internal/feature/portfolio/usecase"
)

// GeminiJudge は生成モデルに採否判定を問い合わせます。
type GeminiJudge struct {
	gen Generator
}

// GeminiJudgeがJudgeを実装していることをコンパイル時に検証します。
var _ usecase.Judge = (*GeminiJudge)(nil)

// NewGeminiJudge はGeminiJudgeの新しいインスタンスを生成します。
func NewGeminiJudge(gen Generator) *GeminiJudge {
	return &GeminiJudge{gen: gen}
}

// Judge はプロンプトをそのまま送信し、回答テキストを返します。回答の解釈は呼び出し側が行います。
func (j *GeminiJudge) Judge(ctx context.Context, prompt string) (string, error) {
	answer, err := j.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: judgment: %w", usecase.ErrModelCallFailed, err)
	}
	return answer, nil
}
