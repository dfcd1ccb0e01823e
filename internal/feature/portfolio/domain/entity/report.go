package entity

// Failure は呼び出し元へ返す失敗情報です。
type Failure struct {
	Source  string
	Company string // ページ単位の失敗では空
	Stage   Stage
	Message string
}

// AnalysisReport は1回の分析実行の結果です。
type AnalysisReport struct {
	RunID           string
	Recurring       map[string]int
	Failures        []Failure
	SourcesScanned  int
	CompaniesScored int
}
