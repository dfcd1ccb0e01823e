// Package usecase はportfolioフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

// Error taxonomy for the analysis pipeline.
// Adapters wrap their failures with one of these so the pipeline can tell them apart.
var (
	// ErrFetchFailed is returned when a page or image could not be downloaded.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrParseFailed is returned when a downloaded document could not be parsed.
	ErrParseFailed = errors.New("parse failed")

	// ErrModelCallFailed is returned when a classifier or generative model call fails.
	ErrModelCallFailed = errors.New("model call failed")

	// ErrSchemaMismatch is returned when a model response cannot be interpreted.
	ErrSchemaMismatch = errors.New("model response schema mismatch")

	// ErrNoSources is returned when no usable portfolio URL was supplied.
	ErrNoSources = errors.New("no portfolio urls supplied")
)
