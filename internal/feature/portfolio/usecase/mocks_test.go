package usecase_test

import (
	"context"
	"errors"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockImageFetcher はImageFetcherインターフェースのモック実装です。
type mockImageFetcher struct {
	FetchImageFunc  func(ctx context.Context, imageURL string) ([]byte, error)
	FetchImageCalls int
}

func (m *mockImageFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	m.FetchImageCalls++
	if m.FetchImageFunc != nil {
		return m.FetchImageFunc(ctx, imageURL)
	}
	return nil, errors.New("FetchImageFunc is not implemented")
}

// mockSentiment はSentimentClassifierインターフェースのモック実装です。
type mockSentiment struct {
	ClassifyFunc  func(ctx context.Context, text string) (entity.Sentiment, error)
	ClassifyCalls int
}

func (m *mockSentiment) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	m.ClassifyCalls++
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return entity.Sentiment{}, errors.New("ClassifyFunc is not implemented")
}

// mockLabeler はImageLabelerインターフェースのモック実装です。
type mockLabeler struct {
	LabelsFunc  func(ctx context.Context, imageData []byte) ([]entity.ImageLabel, error)
	LabelsCalls int
}

func (m *mockLabeler) Labels(ctx context.Context, imageData []byte) ([]entity.ImageLabel, error) {
	m.LabelsCalls++
	if m.LabelsFunc != nil {
		return m.LabelsFunc(ctx, imageData)
	}
	return nil, errors.New("LabelsFunc is not implemented")
}

// mockJudge はJudgeインターフェースのモック実装です。
type mockJudge struct {
	JudgeFunc  func(ctx context.Context, prompt string) (string, error)
	JudgeCalls int
}

func (m *mockJudge) Judge(ctx context.Context, prompt string) (string, error) {
	m.JudgeCalls++
	if m.JudgeFunc != nil {
		return m.JudgeFunc(ctx, prompt)
	}
	return "", errors.New("JudgeFunc is not implemented")
}

// mockPageFetcher はPageFetcherインターフェースのモック実装です。
type mockPageFetcher struct {
	FetchPageFunc  func(ctx context.Context, pageURL string) ([]byte, error)
	FetchPageCalls int
}

func (m *mockPageFetcher) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	m.FetchPageCalls++
	if m.FetchPageFunc != nil {
		return m.FetchPageFunc(ctx, pageURL)
	}
	return nil, errors.New("FetchPageFunc is not implemented")
}

// mockExtractor はCompanyExtractorインターフェースのモック実装です。
type mockExtractor struct {
	ExtractFunc func(pageURL string, html []byte) ([]entity.PortfolioCompany, error)
}

func (m *mockExtractor) Extract(pageURL string, html []byte) ([]entity.PortfolioCompany, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(pageURL, html)
	}
	return nil, errors.New("ExtractFunc is not implemented")
}

// mockScorer はScorerインターフェースのモック実装です。
type mockScorer struct {
	ScoreFunc  func(ctx context.Context, c entity.PortfolioCompany) entity.Verdict
	ScoreCalls []entity.PortfolioCompany
}

func (m *mockScorer) Score(ctx context.Context, c entity.PortfolioCompany) entity.Verdict {
	m.ScoreCalls = append(m.ScoreCalls, c)
	return m.ScoreFunc(ctx, c)
}

// mockRecorder はRecorderインターフェースのモック実装です。
type mockRecorder struct {
	Verdicts     map[entity.Outcome]int
	PageFailures map[entity.Stage]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{Verdicts: map[entity.Outcome]int{}, PageFailures: map[entity.Stage]int{}}
}

func (m *mockRecorder) ObserveVerdict(outcome entity.Outcome, _ entity.Stage) {
	m.Verdicts[outcome]++
}

func (m *mockRecorder) ObservePageFailure(stage entity.Stage) {
	m.PageFailures[stage]++
}
