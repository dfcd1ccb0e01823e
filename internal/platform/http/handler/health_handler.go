// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse は /healthz のレスポンスボディです。
type HealthResponse struct {
	Status string `json:"status"`
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// 外部API（Gemini・Vision）には問い合わせず、プロセスが応答できることだけを返します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
