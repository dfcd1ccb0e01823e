package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
)

// ContainerClassPatterns は企業カードとみなすclass属性の部分文字列です。
var ContainerClassPatterns = []string{"portfolio", "company", "startup"}

// descriptionClassPatterns は説明文要素とみなすclass属性の部分文字列です。
var descriptionClassPatterns = []string{"description"}

var innerWhitespace = regexp.MustCompile(`\s+`)

// Extractor はclass属性のパターンマッチでHTMLから企業レコードを抽出します。
type Extractor struct{}

var _ usecase.CompanyExtractor = Extractor{}

// NewExtractor はExtractorを生成します。
func NewExtractor() Extractor {
	return Extractor{}
}

// Extract はdiv/article要素のうちclass属性がパターンを含むものを企業カードとして扱い、
// 見出し（h2/h3/h4）から企業名、最初のimgから画像URL、
// class属性に"description"を含むp/divから説明文を取り出します。
// カードが入れ子になっている場合は外側の要素もそれぞれ1件として返します。
func (Extractor) Extract(pageURL string, html []byte) ([]entity.PortfolioCompany, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", usecase.ErrParseFailed, pageURL, err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	companies := make([]entity.PortfolioCompany, 0)
	doc.Find("div, article").Each(func(_ int, item *goquery.Selection) {
		if !ClassContainsAny(item, ContainerClassPatterns) {
			return
		}
		desc := item.Find("p, div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return ClassContainsAny(s, descriptionClassPatterns)
		}).First()

		companies = append(companies, entity.PortfolioCompany{
			Name:        CleanText(item.Find("h2, h3, h4").First().Text()),
			ImageURL:    resolveURL(base, item.Find("img").First().AttrOr("src", "")),
			Description: CleanText(desc.Text()),
			SourceURL:   pageURL,
		})
	})
	return companies, nil
}

// ClassContainsAny はclass属性がいずれかのパターンを含むかを返します（大文字小文字を区別します）。
func ClassContainsAny(s *goquery.Selection, patterns []string) bool {
	class, ok := s.Attr("class")
	if !ok || class == "" {
		return false
	}
	for _, p := range patterns {
		if strings.Contains(class, p) {
			return true
		}
	}
	return false
}

// CleanText は前後の空白を除去し、内部の連続空白を1つのスペースにまとめます。
func CleanText(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

// resolveURL は相対URLをページURL基準で絶対URLに変換します。
func resolveURL(base *url.URL, src string) string {
	src = strings.TrimSpace(src)
	if src == "" || base == nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
