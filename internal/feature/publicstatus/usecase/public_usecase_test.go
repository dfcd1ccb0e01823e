package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/feature/publicstatus/domain/entity"
	"portfolio_backend/internal/feature/publicstatus/usecase"
)

// mockExtractor はMentionExtractorインターフェースのモック実装です。
// HTMLをキーに、返す企業名を引きます。
type mockExtractor struct {
	mentions map[string][]string
	errs     map[string]error
}

func (m *mockExtractor) Mentions(html string) ([]string, error) {
	if err, ok := m.errs[html]; ok {
		return nil, err
	}
	return m.mentions[html], nil
}

// mockChecker はStatusCheckerインターフェースのモック実装です。
type mockChecker struct {
	CheckStatusFunc func(ctx context.Context, company string) (entity.ListingStatus, error)
	Checked         []string
}

func (m *mockChecker) CheckStatus(ctx context.Context, company string) (entity.ListingStatus, error) {
	m.Checked = append(m.Checked, company)
	return m.CheckStatusFunc(ctx, company)
}

// mockStatusRecorder はStatusRecorderインターフェースのモック実装です。
type mockStatusRecorder struct {
	counts map[entity.ListingStatus]int
}

func (m *mockStatusRecorder) ObserveListingStatus(status entity.ListingStatus) {
	m.counts[status]++
}

func statusTable(table map[string]entity.ListingStatus) func(ctx context.Context, company string) (entity.ListingStatus, error) {
	return func(ctx context.Context, company string) (entity.ListingStatus, error) {
		if s, ok := table[company]; ok {
			return s, nil
		}
		return entity.StatusPrivate, nil
	}
}

func TestPublicUsecase_FindPublicCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("success: ranked by site frequency, private and unknown excluded", func(t *testing.T) {
		extractor := &mockExtractor{mentions: map[string][]string{
			"a": {"Acme", "Globex", "Initech", "Acme"},
			"b": {"Acme", "Globex", "Hooli"},
			"c": {"Acme", "Hooli", ""},
		}}
		checker := &mockChecker{CheckStatusFunc: statusTable(map[string]entity.ListingStatus{
			"Acme":    entity.StatusPublic,
			"Globex":  entity.StatusUnknown,
			"Hooli":   entity.StatusPublic,
			"Initech": entity.StatusPublic,
		})}
		rec := &mockStatusRecorder{counts: map[entity.ListingStatus]int{}}
		uc := usecase.NewPublicUsecase(extractor, checker, rec)

		report, err := uc.FindPublicCompanies(ctx, []entity.Site{
			{URL: "https://a.vc", HTML: "a"},
			{URL: "https://b.vc", HTML: "b"},
			{URL: "https://c.vc", HTML: "c"},
		})

		require.NoError(t, err)
		assert.Equal(t, []entity.PublicCompany{
			{Name: "Acme", Appearances: 3},
			{Name: "Hooli", Appearances: 2},
			{Name: "Initech", Appearances: 1},
		}, report.Companies)
		assert.Equal(t, []string{"Globex"}, report.Unknown)
		assert.Equal(t, []string{"Acme", "Globex", "Hooli", "Initech"}, checker.Checked)
		assert.Equal(t, 3, rec.counts[entity.StatusPublic])
		assert.Equal(t, 1, rec.counts[entity.StatusUnknown])
	})

	t.Run("success: checker errors are treated as unknown", func(t *testing.T) {
		extractor := &mockExtractor{mentions: map[string][]string{"a": {"Acme", "Globex"}}}
		checker := &mockChecker{CheckStatusFunc: func(ctx context.Context, company string) (entity.ListingStatus, error) {
			if company == "Acme" {
				return entity.StatusUnknown, usecase.ErrModelCallFailed
			}
			return entity.StatusPublic, nil
		}}
		uc := usecase.NewPublicUsecase(extractor, checker, nil)

		report, err := uc.FindPublicCompanies(ctx, []entity.Site{{HTML: "a"}})

		require.NoError(t, err)
		assert.Equal(t, []entity.PublicCompany{{Name: "Globex", Appearances: 1}}, report.Companies)
		assert.Equal(t, []string{"Acme"}, report.Unknown)
	})

	t.Run("success: unparsable site is skipped", func(t *testing.T) {
		extractor := &mockExtractor{
			mentions: map[string][]string{"ok": {"Acme"}},
			errs:     map[string]error{"bad": usecase.ErrParseFailed},
		}
		checker := &mockChecker{CheckStatusFunc: statusTable(map[string]entity.ListingStatus{"Acme": entity.StatusPublic})}
		uc := usecase.NewPublicUsecase(extractor, checker, nil)

		report, err := uc.FindPublicCompanies(ctx, []entity.Site{{HTML: "bad"}, {HTML: "ok"}})

		require.NoError(t, err)
		assert.Equal(t, []entity.PublicCompany{{Name: "Acme", Appearances: 1}}, report.Companies)
	})

	t.Run("success: capped at the top twenty public companies", func(t *testing.T) {
		names := make([]string, 30)
		for i := range names {
			names[i] = fmt.Sprintf("Company%02d", i)
		}
		extractor := &mockExtractor{mentions: map[string][]string{"a": names}}
		checker := &mockChecker{CheckStatusFunc: func(ctx context.Context, company string) (entity.ListingStatus, error) {
			return entity.StatusPublic, nil
		}}
		uc := usecase.NewPublicUsecase(extractor, checker, nil)

		report, err := uc.FindPublicCompanies(ctx, []entity.Site{{HTML: "a"}})

		require.NoError(t, err)
		require.Len(t, report.Companies, usecase.MaxPublicResults)
		assert.Equal(t, "Company00", report.Companies[0].Name)
		assert.Equal(t, "Company19", report.Companies[19].Name)
		assert.Len(t, checker.Checked, usecase.MaxPublicResults)
	})

	t.Run("success: no mentions yields empty report", func(t *testing.T) {
		uc := usecase.NewPublicUsecase(&mockExtractor{}, &mockChecker{}, nil)

		report, err := uc.FindPublicCompanies(ctx, []entity.Site{{HTML: "<p>nothing</p>"}})

		require.NoError(t, err)
		assert.Empty(t, report.Companies)
		assert.Empty(t, report.Unknown)
	})

	t.Run("error: no sites", func(t *testing.T) {
		uc := usecase.NewPublicUsecase(&mockExtractor{}, &mockChecker{}, nil)

		report, err := uc.FindPublicCompanies(ctx, nil)

		assert.ErrorIs(t, err, usecase.ErrNoSites)
		assert.Nil(t, report)
	})

	t.Run("error: cancelled context aborts", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		extractor := &mockExtractor{mentions: map[string][]string{"a": {"Acme", "Globex"}}}
		checker := &mockChecker{CheckStatusFunc: func(ctx context.Context, company string) (entity.ListingStatus, error) {
			cancel()
			return entity.StatusUnknown, errors.New("request aborted")
		}}
		uc := usecase.NewPublicUsecase(extractor, checker, nil)

		report, err := uc.FindPublicCompanies(cctx, []entity.Site{{HTML: "a"}})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, report)
		assert.Len(t, checker.Checked, 1)
	})
}

func TestRankMentions(t *testing.T) {
	got := usecase.RankMentions(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1})

	assert.Equal(t, []entity.CompanyMention{
		{Name: "c", Frequency: 5},
		{Name: "a", Frequency: 2},
		{Name: "b", Frequency: 2},
		{Name: "d", Frequency: 1},
	}, got)
}
