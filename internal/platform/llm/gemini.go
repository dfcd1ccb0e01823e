// Package llm はGoogle Gemini APIのテキスト生成クライアントを提供します。
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// mimeJSON はJSONモードで要求するレスポンス形式です。
	mimeJSON = "application/json"
)

// GeminiClient はGemini APIへのプロンプト送信をまとめたクライアントです。
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient はGeminiClientの新しいインスタンスを生成します。
// apiKey が空の場合は環境変数（GOOGLE_API_KEY、またはVertex AI用の
// GOOGLE_GENAI_USE_VERTEXAI / GOOGLE_CLOUD_PROJECT / GOOGLE_CLOUD_LOCATION）を使用します。
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Model は使用中のモデル名を返します。
func (g *GeminiClient) Model() string {
	return g.model
}

// GenerateText はプロンプトに対する自由形式のテキスト回答を返します。
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
}

// GenerateJSON はJSONモードでプロンプトを送信し、生のJSON文字列を返します。
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: mimeJSON,
	})
}

func (g *GeminiClient) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
