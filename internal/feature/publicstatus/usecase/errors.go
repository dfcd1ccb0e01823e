// Package usecase はpublicstatusフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrNoSites は解析対象のサイトが1件もない場合に返されます。
	ErrNoSites = errors.New("no sites given")
	// ErrParseFailed はHTMLの解析に失敗した場合に返されます。
	ErrParseFailed = errors.New("parse failed")
	// ErrModelCallFailed は生成モデルの呼び出しに失敗した場合に返されます。
	ErrModelCallFailed = errors.New("model call failed")
)
