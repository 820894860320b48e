package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"bousai_recommend/config"
	_ "bousai_recommend/docs" // 导入 swagger 文档
)

// NewRouter 创建带全部中间件和路由的chi路由器
func NewRouter(cfg *config.Config, svc Recommender) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	RegisterRoutes(r, cfg, svc)
	return r
}

func RegisterRoutes(r chi.Router, cfg *config.Config, svc Recommender) {
	r.Use(CORS(cfg))

	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		HealthHandler(w, r, cfg)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(cfg))
		r.Post("/recommend", func(w http.ResponseWriter, r *http.Request) {
			RecommendHandler(w, r, svc)
		})
	})
}
