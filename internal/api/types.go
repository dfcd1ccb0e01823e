// Package api はHTTP APIのリクエスト・レスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalyzeRequest は POST /analyze のリクエストボディです。
type AnalyzeRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

// FailureResponse は処理できなかったページ・企業の情報です。
type FailureResponse struct {
	Source  string `json:"source"`
	Company string `json:"company,omitempty"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// AnalyzeResponse は POST /analyze のレスポンスボディです。
type AnalyzeResponse struct {
	RecurringAICompanies map[string]int    `json:"recurring_ai_companies"`
	RunID                string            `json:"run_id"`
	Failures             []FailureResponse `json:"failures"`
}

// SiteRequest は解析対象のポートフォリオHTMLです。
type SiteRequest struct {
	URL         string `json:"url"`
	HTMLContent string `json:"html_content" binding:"required"`
}

// PublicCompaniesRequest は POST /public-companies のリクエストボディです。
type PublicCompaniesRequest struct {
	Sites []SiteRequest `json:"sites" binding:"required,min=1,dive"`
}

// PublicCompanyResponse は上場企業1社分のサマリーです。
type PublicCompanyResponse struct {
	Company              string `json:"company"`
	PortfolioAppearances int    `json:"portfolio_appearances"`
	PublicStatus         string `json:"public_status"`
}

// PublicCompaniesResponse は POST /public-companies のレスポンスボディです。
type PublicCompaniesResponse struct {
	Companies []PublicCompanyResponse `json:"companies"`
	Unknown   []string                `json:"unknown"`
}
