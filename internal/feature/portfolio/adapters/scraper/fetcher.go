// Package scraper はポートフォリオページの取得とHTMLからの企業抽出を提供します。
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"portfolio_backend/internal/feature/portfolio/usecase"
)

const (
	// DefaultMaxBodySize はページ・画像レスポンスの最大サイズ（10MB）です。
	DefaultMaxBodySize = 10 * 1024 * 1024
	// DefaultUserAgent は取得時に送信するUser-Agentです。
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Fetcher はHTTP GETでページと画像を取得します。
type Fetcher struct {
	client      *resty.Client
	maxBodySize int64
}

var (
	_ usecase.PageFetcher  = (*Fetcher)(nil)
	_ usecase.ImageFetcher = (*Fetcher)(nil)
)

// NewFetcher はhttpClientをラップしたFetcherを生成します。
// userAgent が空の場合は DefaultUserAgent、maxBodySize が0以下の場合は DefaultMaxBodySize を使用します。
func NewFetcher(httpClient *http.Client, userAgent string, maxBodySize int64) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	client := resty.NewWithClient(httpClient)
	client.SetHeader("User-Agent", userAgent)
	return &Fetcher{client: client, maxBodySize: maxBodySize}
}

// FetchPage はポートフォリオページのHTMLを取得します。
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	return f.get(ctx, pageURL, "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
}

// FetchImage は企業画像のバイト列を取得します。
func (f *Fetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return f.get(ctx, imageURL, "image/*,*/*;q=0.8")
}

func (f *Fetcher) get(ctx context.Context, target, accept string) ([]byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", accept).
		SetDoNotParseResponse(true).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", usecase.ErrFetchFailed, target, err)
	}
	body := res.RawBody()
	defer func() {
		if err := body.Close(); err != nil {
			slog.Warn("failed to close response body", "url", target, "error", err)
		}
	}()

	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("%w: GET %s: http %d", usecase.ErrFetchFailed, target, res.StatusCode())
	}

	data, err := io.ReadAll(io.LimitReader(body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", usecase.ErrFetchFailed, target, err)
	}
	if int64(len(data)) > f.maxBodySize {
		return nil, fmt.Errorf("%w: %s exceeds maximum of %d bytes", usecase.ErrFetchFailed, target, f.maxBodySize)
	}
	return data, nil
}
