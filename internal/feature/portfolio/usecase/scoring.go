package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
)

const (
	// PositiveLabel は感情分類器がポジティブと判定した際のラベルです。
	PositiveLabel = "POSITIVE"
	// AcceptToken はLLMの回答がこの文字列と一致した場合のみ採用とします。
	AcceptToken = "yes"
	// JudgmentPromptTemplate はコンセンサス判定用のプロンプトです。
	// 企業名・テキストスコア・画像スコア・説明文の順に埋め込みます。
	JudgmentPromptTemplate = `Analyze this company based on the following scores:
Name: %s
Text Analysis Score: %s
Image Analysis Score: %s
Description: %s

Given these analysis scores and the description, is this an AI company? Return only 'yes' or 'no'.`
)

// AIKeywords は画像ラベルをAI関連とみなすキーワードです（部分一致、小文字比較）。
var AIKeywords = []string{"computer", "technology", "digital", "software", "electronic"}

// ImageFetcher は企業画像のバイト列を取得します。
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// SentimentClassifier は説明文の感情を分類します。
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (entity.Sentiment, error)
}

// ImageLabeler は画像にラベルを付与します。
type ImageLabeler interface {
	Labels(ctx context.Context, imageData []byte) ([]entity.ImageLabel, error)
}

// Judge はプロンプトに対する生成モデルの回答を返します。
type Judge interface {
	Judge(ctx context.Context, prompt string) (string, error)
}

// ConsensusScorer は3つの独立したシグナルを1つの採否判定にまとめます。
type ConsensusScorer struct {
	images    ImageFetcher
	sentiment SentimentClassifier
	labeler   ImageLabeler
	judge     Judge
}

// NewConsensusScorer はConsensusScorerの新しいインスタンスを生成します。
func NewConsensusScorer(images ImageFetcher, sentiment SentimentClassifier, labeler ImageLabeler, judge Judge) *ConsensusScorer {
	return &ConsensusScorer{images: images, sentiment: sentiment, labeler: labeler, judge: judge}
}

// Score は1社を判定します。どの段階で失敗しても残りの段階は実行せず、
// OutcomeFailed と失敗段階を持つVerdictを返します。
func (s *ConsensusScorer) Score(ctx context.Context, company entity.PortfolioCompany) entity.Verdict {
	v := entity.Verdict{Company: company}

	textScore, err := s.textScore(ctx, company.Description)
	if err != nil {
		return failed(v, entity.StageSentiment, err)
	}
	v.Signals.TextScore = textScore

	if company.HasImage() {
		data, err := s.images.FetchImage(ctx, company.ImageURL)
		if err != nil {
			return failed(v, entity.StageFetchImage, err)
		}
		labels, err := s.labeler.Labels(ctx, data)
		if err != nil {
			return failed(v, entity.StageImageLabels, err)
		}
		v.Signals.ImageScore = KeywordScore(labels, AIKeywords)
	}

	answer, err := s.judge.Judge(ctx, BuildJudgmentPrompt(company, v.Signals))
	if err != nil {
		return failed(v, entity.StageJudgment, err)
	}
	if IsAffirmative(answer) {
		v.Outcome = entity.OutcomeAccepted
	} else {
		v.Outcome = entity.OutcomeRejected
	}
	slog.DebugContext(ctx, "company judged",
		"company", company.Name,
		"text_score", v.Signals.TextScore,
		"image_score", v.Signals.ImageScore,
		"outcome", v.Outcome,
	)
	return v
}

// textScore は説明文のポジティブ度を返します。説明文が空ならモデルを呼び出しません。
func (s *ConsensusScorer) textScore(ctx context.Context, description string) (float64, error) {
	if strings.TrimSpace(description) == "" {
		return 0, nil
	}
	sent, err := s.sentiment.Classify(ctx, description)
	if err != nil {
		return 0, err
	}
	return Positivity(sent), nil
}

func failed(v entity.Verdict, stage entity.Stage, err error) entity.Verdict {
	v.Outcome = entity.OutcomeFailed
	v.Stage = stage
	v.Err = err
	return v
}

// Positivity はPOSITIVEラベルの場合のみ確信度を返し、それ以外は0を返します。
func Positivity(s entity.Sentiment) float64 {
	if !strings.EqualFold(s.Label, PositiveLabel) {
		return 0
	}
	switch {
	case s.Score < 0:
		return 0
	case s.Score > 1:
		return 1
	}
	return s.Score
}

// KeywordScore はキーワードのいずれかを含むラベルのうち最大のスコアを[0,1]で返します。
// Visionのラベルスコアは独立した確信度のため、合計せずに最大値を使います。
func KeywordScore(labels []entity.ImageLabel, keywords []string) float64 {
	var best float64
	for _, l := range labels {
		desc := strings.ToLower(l.Description)
		for _, kw := range keywords {
			if strings.Contains(desc, kw) {
				best = max(best, l.Score)
				break
			}
		}
	}
	return min(best, 1)
}

// BuildJudgmentPrompt は判定用プロンプトを組み立てます。
func BuildJudgmentPrompt(company entity.PortfolioCompany, sig entity.Signals) string {
	return fmt.Sprintf(JudgmentPromptTemplate,
		company.Name,
		formatScore(sig.TextScore),
		formatScore(sig.ImageScore),
		company.Description,
	)
}

func formatScore(f float64) string {
	return fmt.Sprintf("%g", f)
}

// IsAffirmative は回答を小文字化・前後空白除去した結果が "yes" と一致するかを返します。
func IsAffirmative(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == AcceptToken
}
