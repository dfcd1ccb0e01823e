package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
)

// PageFetcher はポートフォリオページのHTMLを取得します。
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) ([]byte, error)
}

// CompanyExtractor はHTMLから企業レコードを抽出します。
type CompanyExtractor interface {
	Extract(pageURL string, html []byte) ([]entity.PortfolioCompany, error)
}

// Scorer は1社分のコンセンサス判定を行います。
type Scorer interface {
	Score(ctx context.Context, company entity.PortfolioCompany) entity.Verdict
}

// Recorder は判定結果を計測系へ通知します。nilの場合は何もしません。
type Recorder interface {
	ObserveVerdict(outcome entity.Outcome, stage entity.Stage)
	ObservePageFailure(stage entity.Stage)
}

// analyzeUsecase はポートフォリオ横断の再出現分析を行います。
type analyzeUsecase struct {
	pages     PageFetcher
	extractor CompanyExtractor
	scorer    Scorer
	recorder  Recorder
	newRunID  func() string
}

// NewAnalyzeUsecase はanalyzeUsecaseの新しいインスタンスを生成します。
func NewAnalyzeUsecase(pages PageFetcher, extractor CompanyExtractor, scorer Scorer, recorder Recorder) *analyzeUsecase {
	return &analyzeUsecase{
		pages:     pages,
		extractor: extractor,
		scorer:    scorer,
		recorder:  recorder,
		newRunID:  uuid.NewString,
	}
}

// AnalyzePortfolios は各URLを順に取得・抽出・判定し、
// 2つ以上のポートフォリオで採用された企業名と出現数を返します。
// 1件の失敗で処理全体は中断せず、失敗はレポートのFailuresに記録します。
func (u *analyzeUsecase) AnalyzePortfolios(ctx context.Context, urls []string) (*entity.AnalysisReport, error) {
	sources := uniqueURLs(urls)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	report := &entity.AnalysisReport{RunID: u.newRunID()}
	rec := NewRecurrence()
	logger := slog.With("run_id", report.RunID)

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.SourcesScanned++

		companies, stage, err := u.loadPage(ctx, src)
		if err != nil {
			logger.WarnContext(ctx, "portfolio page skipped", "url", src, "stage", stage, "error", err)
			report.Failures = append(report.Failures, entity.Failure{Source: src, Stage: stage, Message: err.Error()})
			u.observePage(stage)
			continue
		}

		for _, c := range dedupeByName(companies) {
			v := u.scorer.Score(ctx, c)
			report.CompaniesScored++
			u.observeVerdict(v)

			if v.Accepted() {
				rec.Add(src, c.Name)
				continue
			}
			if v.Outcome == entity.OutcomeFailed {
				if errors.Is(v.Err, context.Canceled) || errors.Is(v.Err, context.DeadlineExceeded) {
					return nil, v.Err
				}
				logger.WarnContext(ctx, "company scoring failed",
					"url", src, "company", c.Name, "stage", v.Stage, "error", v.Err)
				report.Failures = append(report.Failures, entity.Failure{
					Source:  src,
					Company: c.Name,
					Stage:   v.Stage,
					Message: errorMessage(v.Err),
				})
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.Recurring = rec.Recurring(MinRecurrence)
	logger.InfoContext(ctx, "portfolio analysis finished",
		"sources", report.SourcesScanned,
		"companies", report.CompaniesScored,
		"recurring", len(report.Recurring),
		"failures", len(report.Failures),
	)
	return report, nil
}

// loadPage はページを取得して企業を抽出します。失敗時は失敗段階も返します。
func (u *analyzeUsecase) loadPage(ctx context.Context, src string) ([]entity.PortfolioCompany, entity.Stage, error) {
	body, err := u.pages.FetchPage(ctx, src)
	if err != nil {
		return nil, entity.StageFetchPage, err
	}
	companies, err := u.extractor.Extract(src, body)
	if err != nil {
		return nil, entity.StageParsePage, err
	}
	return companies, "", nil
}

func (u *analyzeUsecase) observeVerdict(v entity.Verdict) {
	if u.recorder != nil {
		u.recorder.ObserveVerdict(v.Outcome, v.Stage)
	}
}

func (u *analyzeUsecase) observePage(stage entity.Stage) {
	if u.recorder != nil {
		u.recorder.ObservePageFailure(stage)
	}
}

// uniqueURLs は空文字を除き、順序を保ったまま重複URLを取り除きます。
func uniqueURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// dedupeByName は名前が空のレコードを除き、同一ページ内の同名レコードは最初の1件だけ残します。
func dedupeByName(companies []entity.PortfolioCompany) []entity.PortfolioCompany {
	seen := make(map[string]struct{}, len(companies))
	out := make([]entity.PortfolioCompany, 0, len(companies))
	for _, c := range companies {
		if c.Name == "" {
			continue
		}
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}
	return out
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
