package entity

// Outcome はコンセンサス判定の結果区分です。
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed は判定途中の失敗を表し、否定判定とは区別されます。
	OutcomeFailed Outcome = "failed"
)

// Stage は失敗が発生した処理段階です。
type Stage string

const (
	StageFetchPage   Stage = "fetch_page"
	StageParsePage   Stage = "parse_page"
	StageFetchImage  Stage = "fetch_image"
	StageSentiment   Stage = "sentiment"
	StageImageLabels Stage = "image_labels"
	StageJudgment    Stage = "judgment"
)

// Signals はLLMへ渡す2つの補助スコアです。
type Signals struct {
	TextScore  float64 // 説明文のポジティブ度（0.0 ~ 1.0）
	ImageScore float64 // AI関連ラベルのスコア合計
}

// Verdict は1社に対する判定結果です。
type Verdict struct {
	Company PortfolioCompany
	Signals Signals
	Outcome Outcome
	Stage   Stage // Outcome が failed の場合のみ設定
	Err     error
}

// Accepted は企業がAI企業として採用されたかを返します。
func (v Verdict) Accepted() bool {
	return v.Outcome == OutcomeAccepted
}
