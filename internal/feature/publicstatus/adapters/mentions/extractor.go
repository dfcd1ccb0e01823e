// Package mentions はポートフォリオHTMLから企業名の言及を抽出するアダプターを提供します。
package mentions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"portfolio_backend/internal/feature/publicstatus/usecase"
)

// MentionSelector は言及の候補となる要素です。
const MentionSelector = "h1, h2, h3, div"

// MentionClassPattern は言及とみなすclass属性のパターンです（大文字小文字を区別しない）。
var MentionClassPattern = regexp.MustCompile(`(?i)company|portfolio|startup`)

// Extractor はclass属性の正規表現マッチで企業名を抽出します。
// 入れ子の要素がどちらもマッチした場合、それぞれのテキストを別の言及として返します。
type Extractor struct{}

var _ usecase.MentionExtractor = Extractor{}

// NewExtractor はExtractorを生成します。
func NewExtractor() Extractor {
	return Extractor{}
}

// Mentions はマッチした要素のテキストを文書順に返します。空のテキストは除外します。
func (Extractor) Mentions(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrParseFailed, err)
	}

	var names []string
	doc.Find(MentionSelector).Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok || !MentionClassPattern.MatchString(class) {
			return
		}
		if name := strings.Join(strings.Fields(s.Text()), " "); name != "" {
			names = append(names, name)
		}
	})
	return names, nil
}
