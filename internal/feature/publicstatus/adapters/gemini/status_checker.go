// Package gemini はGemini APIに企業の上場状態を問い合わせるアダプターを提供します。
package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"portfolio_backend/internal/feature/publicstatus/domain/entity"
	"portfolio_backend/internal/feature/publicstatus/usecase"
)

// StatusPromptTemplate は上場状態の問い合わせプロンプトです。%s に企業名が入ります。
const StatusPromptTemplate = `Is %s a publicly traded company as of today?
Please respond with ONLY 'Yes' or 'No'.
Base this on whether they have had an IPO and are currently trading on a major stock exchange.`

var (
	yesPattern = regexp.MustCompile(`\byes\b`)
	noPattern  = regexp.MustCompile(`\bno\b`)
)

// TextGenerator はプロンプトからテキストを生成するクライアントです。
// llm.GeminiClient が実装します。
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// StatusChecker は生成モデルに企業の上場状態を問い合わせます。
type StatusChecker struct {
	gen TextGenerator
}

var _ usecase.StatusChecker = (*StatusChecker)(nil)

// NewStatusChecker はStatusCheckerの新しいインスタンスを生成します。
func NewStatusChecker(gen TextGenerator) *StatusChecker {
	return &StatusChecker{gen: gen}
}

// CheckStatus は企業の上場状態を返します。呼び出しに失敗した場合はエラーを返し、
// 状態の扱いは呼び出し側に委ねます。
func (c *StatusChecker) CheckStatus(ctx context.Context, company string) (entity.ListingStatus, error) {
	answer, err := c.gen.GenerateText(ctx, fmt.Sprintf(StatusPromptTemplate, company))
	if err != nil {
		return entity.StatusUnknown, fmt.Errorf("%w: listing status: %w", usecase.ErrModelCallFailed, err)
	}
	return ParseListingStatus(answer), nil
}

// ParseListingStatus は回答に単語としての "yes" があれば上場、なければ "no" で非上場、
// どちらもなければ不明と判定します。
func ParseListingStatus(answer string) entity.ListingStatus {
	a := strings.ToLower(strings.TrimSpace(answer))
	switch {
	case yesPattern.MatchString(a):
		return entity.StatusPublic
	case noPattern.MatchString(a):
		return entity.StatusPrivate
	}
	return entity.StatusUnknown
}
