// Package gemini はGemini APIを使用した感情分類とコンセンサス判定のアダプターを提供します。
package gemini

import "context"

// Generator はプロンプトからテキストを生成するクライアントです。
// llm.GeminiClient が実装します。
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
