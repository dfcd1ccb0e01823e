// Package config はサービスとCLIの設定を定義し、読み込みます。
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfig は設定値の検証に失敗した場合に返されます。
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig は設定ファイル・環境変数の読み込みに失敗した場合に返されます。
	ErrLoadConfig = errors.New("load config failed")
)

// Config はプロセス全体の設定です。
type Config struct {
	// Addr はHTTPサーバーの待ち受けアドレスです（例: ":8080"）。
	Addr string `koanf:"addr"`

	// LogLevel は debug, info, warn, error のいずれかです。
	LogLevel string `koanf:"log_level"`
	// LogFormat は text または json です。
	LogFormat string `koanf:"log_format"`

	// GoogleAPIKey はGemini APIのキーです。未設定ならSDKが環境変数から解決します。
	GoogleAPIKey string `koanf:"google_api_key"`
	// GeminiModel は判定・感情分類・上場状態の問い合わせに使うモデル名です。
	GeminiModel string `koanf:"gemini_model"`
	// VisionMaxLabels はCloud Visionに要求するラベル数の上限です。
	VisionMaxLabels int `koanf:"vision_max_labels"`

	// HTTPTimeout はページ・画像取得1回あたりのタイムアウトです。
	HTTPTimeout time.Duration `koanf:"http_timeout"`
	// UserAgent はスクレイピング時のUser-Agentヘッダーです。
	UserAgent string `koanf:"user_agent"`
	// MaxBodySize はページ・画像の最大サイズ（バイト）です。
	MaxBodySize int64 `koanf:"max_body_size"`
	// CloudflareBypass が true の場合、取得用トランスポートをCloudflare対策付きで包みます。
	CloudflareBypass bool `koanf:"cloudflare_bypass"`

	// JWTSecret が設定されている場合のみ、APIルートにBearer認証を要求します。
	JWTSecret string `koanf:"jwt_secret"`
	// JWTExpiration は portfolioctl token で発行するトークンの有効期間です。
	JWTExpiration time.Duration `koanf:"jwt_expiration"`
}

// New はデフォルト値で埋めたConfigを返します。
func New() *Config {
	return &Config{
		Addr:             ":8080",
		LogLevel:         "info",
		LogFormat:        "text",
		GeminiModel:      "gemini-2.5-flash",
		VisionMaxLabels:  5,
		HTTPTimeout:      15 * time.Second,
		UserAgent:        "portfolio-analyzer/1.0 (+https://github.com/portfolio-analyzer)",
		MaxBodySize:      10 << 20,
		CloudflareBypass: false,
		JWTExpiration:    24 * time.Hour,
	}
}

// AuthEnabled はAPIルートにJWT認証を掛けるかどうかを返します。
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !oneOf(c.LogLevel, "debug", "info", "warn", "error"):
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	case !oneOf(c.LogFormat, "text", "json"):
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	case c.GeminiModel == "":
		return fmt.Errorf("%w: gemini_model must not be empty", ErrInvalidConfig)
	case c.VisionMaxLabels <= 0:
		return fmt.Errorf("%w: vision_max_labels must be positive", ErrInvalidConfig)
	case c.HTTPTimeout <= 0:
		return fmt.Errorf("%w: http_timeout must be positive", ErrInvalidConfig)
	case c.MaxBodySize <= 0:
		return fmt.Errorf("%w: max_body_size must be positive", ErrInvalidConfig)
	case c.JWTExpiration <= 0:
		return fmt.Errorf("%w: jwt_expiration must be positive", ErrInvalidConfig)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
