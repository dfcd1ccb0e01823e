package entity

// Sentiment は感情分類器の出力です。
type Sentiment struct {
	Label string  // "POSITIVE" または "NEGATIVE"
	Score float64 // ラベルに対する確信度（0.0 ~ 1.0）
}

// ImageLabel は画像分類で得られたラベルです。
type ImageLabel struct {
	Description string
	Score       float64
}
