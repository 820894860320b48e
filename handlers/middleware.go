package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"bousai_recommend/config"
	"bousai_recommend/models"
	"bousai_recommend/utils"
)

// CORS 浏览器前端跨域访问
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{GenerationIDHeader, "X-Request-ID"},
		MaxAge:         300,
	})
}

// RateLimit 按客户端IP限流，每次推荐都会调用付费的生成模型
func RateLimit(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.RateLimit.Disabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSec)*time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteJSON(w, http.StatusTooManyRequests, models.ErrorResponse{Error: "too many requests"})
		}),
	)
}
