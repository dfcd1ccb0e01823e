// Package entity はportfolioフィーチャーのドメインモデルを定義します。
package entity

// PortfolioCompany はポートフォリオページから抽出された1社分のレコードです。
// Name が唯一の識別子であり、完全一致で重複判定されます。
type PortfolioCompany struct {
	Name        string // 企業名（前後の空白除去・連続空白の圧縮のみ）
	ImageURL    string // 画像URL（任意、ページURL基準で絶対化済み）
	Description string // 説明文（任意）
	SourceURL   string // 抽出元のポートフォリオページ
}

// HasImage は画像URLを持つかどうかを返します。
func (c PortfolioCompany) HasImage() bool {
	return c.ImageURL != ""
}
