// Package entity はpublicstatusフィーチャーのドメインモデルを定義します。
package entity

// Site は解析対象のポートフォリオページです。HTMLは呼び出し元が用意します。
type Site struct {
	URL  string
	HTML string
}

// CompanyMention は企業名と、その企業に言及したサイト数です。
type CompanyMention struct {
	Name      string
	Frequency int
}

// ListingStatus は企業の上場状態です。
type ListingStatus string

const (
	StatusPublic  ListingStatus = "public"
	StatusPrivate ListingStatus = "private"
	StatusUnknown ListingStatus = "unknown"
)

// PublicCompany は上場と判定された企業と、そのポートフォリオ出現数です。
type PublicCompany struct {
	Name        string
	Appearances int
}

// StatusReport は上場企業の一覧と、状態を判定できなかった企業名です。
type StatusReport struct {
	Companies []PublicCompany
	Unknown   []string
}
