package handlers

import (
	"net/http"

	"bousai_recommend/config"
	"bousai_recommend/models"
	"bousai_recommend/utils"
)

// HealthHandler godoc
// @Summary 健康检查
// @Description 返回服务状态以及各外部服务是否已配置，不暴露密钥
// @Tags 系统
// @Produce json
// @Success 200 {object} models.HealthResponse "成功"
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	utils.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Configured: map[string]bool{
			"llm":         cfg.LLMConfigured(),
			"imageSearch": cfg.ImageSearchConfigured(),
			"videoSearch": cfg.VideoSearchConfigured(),
		},
		LLMProvider: cfg.LLM.Provider,
	})
}
