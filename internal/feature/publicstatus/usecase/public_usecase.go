package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"portfolio_backend/internal/feature/publicstatus/domain/entity"
)

// MaxPublicResults は返却する上場企業の最大件数です。
const MaxPublicResults = 20

// MentionExtractor はHTMLから企業名の言及を抽出します。
type MentionExtractor interface {
	Mentions(html string) ([]string, error)
}

// StatusChecker は企業の上場状態を問い合わせます。
type StatusChecker interface {
	CheckStatus(ctx context.Context, company string) (entity.ListingStatus, error)
}

// StatusRecorder は判定された上場状態を計測系へ通知します。nilの場合は何もしません。
type StatusRecorder interface {
	ObserveListingStatus(status entity.ListingStatus)
}

// publicUsecase はポートフォリオに頻出する上場企業を抽出します。
type publicUsecase struct {
	extractor MentionExtractor
	checker   StatusChecker
	recorder  StatusRecorder
}

// NewPublicUsecase はpublicUsecaseの新しいインスタンスを生成します。
func NewPublicUsecase(extractor MentionExtractor, checker StatusChecker, recorder StatusRecorder) *publicUsecase {
	return &publicUsecase{extractor: extractor, checker: checker, recorder: recorder}
}

// FindPublicCompanies はサイト横断で企業の言及数を数え、出現数の多い順に上場状態を問い合わせます。
// 上場企業が MaxPublicResults 件に達した時点で問い合わせを打ち切ります。
// 状態を判定できなかった企業は上場企業に含めず、Unknownに列挙します。
func (u *publicUsecase) FindPublicCompanies(ctx context.Context, sites []entity.Site) (*entity.StatusReport, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}

	mentions := u.rankMentions(sites)
	report := &entity.StatusReport{
		Companies: make([]entity.PublicCompany, 0, min(len(mentions), MaxPublicResults)),
		Unknown:   []string{},
	}

	for _, m := range mentions {
		if len(report.Companies) >= MaxPublicResults {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := u.checker.CheckStatus(ctx, m.Name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.WarnContext(ctx, "上場状態の問い合わせに失敗", "company", m.Name, "error", err)
			status = entity.StatusUnknown
		}
		if u.recorder != nil {
			u.recorder.ObserveListingStatus(status)
		}

		switch status {
		case entity.StatusPublic:
			report.Companies = append(report.Companies, entity.PublicCompany{Name: m.Name, Appearances: m.Frequency})
		case entity.StatusUnknown:
			report.Unknown = append(report.Unknown, m.Name)
		}
	}

	slog.InfoContext(ctx, "上場企業の抽出が完了",
		"sites", len(sites),
		"mentions", len(mentions),
		"public", len(report.Companies),
		"unknown", len(report.Unknown),
	)
	return report, nil
}

// rankMentions は企業名ごとに言及したサイト数を数え、多い順（同数なら名前順）に並べます。
// 解析できなかったサイトはログに残してスキップします。
func (u *publicUsecase) rankMentions(sites []entity.Site) []entity.CompanyMention {
	counts := make(map[string]int)
	for _, site := range sites {
		names, err := u.extractor.Mentions(site.HTML)
		if err != nil {
			slog.Warn("サイトの解析に失敗", "url", site.URL, "error", err)
			continue
		}
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			counts[name]++
		}
	}
	return RankMentions(counts)
}

// RankMentions は出現数の降順、同数の場合は名前の昇順で並べた言及一覧を返します。
func RankMentions(counts map[string]int) []entity.CompanyMention {
	out := make([]entity.CompanyMention, 0, len(counts))
	for name, n := range counts {
		out = append(out, entity.CompanyMention{Name: name, Frequency: n})
	}
	slices.SortFunc(out, func(a, b entity.CompanyMention) int {
		if c := cmp.Compare(b.Frequency, a.Frequency); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
