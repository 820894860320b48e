package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"bousai_recommend/logger"
	"bousai_recommend/metrics"
	"bousai_recommend/models"
	"bousai_recommend/services"
	"bousai_recommend/utils"
	"bousai_recommend/validation"
)

// maxBodyBytes 请求体大小上限
const maxBodyBytes = 64 << 10

// GenerationIDHeader 每次生成分配的追踪id
const GenerationIDHeader = "X-Generation-ID"

// Recommender 推荐服务
type Recommender interface {
	GenerateRecommendations(ctx context.Context, profile models.HouseholdProfile) ([]models.RecommendedItem, error)
}

// RecommendHandler godoc
// @Summary 生成防灾用品推荐
// @Description 根据家庭信息调用生成模型推荐防灾用品，按预算过滤后补全商品图片和YouTube视频
// @Tags 推荐
// @Accept json
// @Produce json
// @Param profile body models.HouseholdProfile true "家庭信息"
// @Success 200 {array} models.RecommendedItem "推荐商品列表"
// @Failure 400 {object} models.ErrorResponse "参数错误"
// @Failure 500 {object} models.ErrorResponse "配置错误或生成模型调用失败"
// @Router /api/recommend [post]
func RecommendHandler(w http.ResponseWriter, r *http.Request, svc Recommender) {
	generationID := uuid.NewString()
	w.Header().Set(GenerationIDHeader, generationID)
	log := logger.With("generation_id", generationID)

	var profile models.HouseholdProfile
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&profile); err != nil {
		log.Warn("请求体解析失败", "error", err)
		metrics.RecommendRequests.WithLabelValues("bad_request").Inc()
		msg := "invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if verr := validation.ValidateStruct(&profile); verr != nil {
		log.Warn("请求参数校验失败", "error", verr.Error())
		metrics.RecommendRequests.WithLabelValues("bad_request").Inc()
		utils.WriteErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}

	items, err := svc.GenerateRecommendations(r.Context(), profile)
	if err != nil {
		result := "upstream_error"
		if services.IsConfigurationError(err) {
			result = "config_error"
		}
		log.Error("生成推荐失败", "result", result, "error", err)
		metrics.RecommendRequests.WithLabelValues(result).Inc()
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if items == nil {
		items = []models.RecommendedItem{}
	}
	metrics.RecommendRequests.WithLabelValues("success").Inc()
	metrics.RecommendedItems.Observe(float64(len(items)))
	log.Info("推荐生成成功", "items", len(items), "region", profile.Region, "budget", profile.Budget)
	utils.WriteJSON(w, http.StatusOK, items)
}
