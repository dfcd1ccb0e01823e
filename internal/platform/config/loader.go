package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix は設定用環境変数のプレフィックスです。
	EnvPrefix = "PA_"
	// EnvConfigFile はYAML設定ファイルのパスを指定する環境変数です。
	EnvConfigFile = "PA_CONFIG"
	// EnvGoogleAPIKey はGemini SDKが参照するAPIキーの環境変数です。
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

// Load は次の順（後勝ち）で設定を重ねて読み込みます。
//  1. デフォルト値（New）
//  2. PA_CONFIG が指すYAMLファイル
//  3. PA_ プレフィックス付きの環境変数（PA_HTTP_TIMEOUT -> http_timeout）
//
// 読み込み前にカレントディレクトリの .env を環境変数へ展開します（既存の値は上書きしません）。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if cfg.GoogleAPIKey == "" {
		cfg.GoogleAPIKey = os.Getenv(EnvGoogleAPIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
