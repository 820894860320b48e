package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"bousai_recommend/config"
	"bousai_recommend/logger"
	"bousai_recommend/metrics"
	"bousai_recommend/models"
)

// Enricher 为单个商品补全媒体信息
type Enricher interface {
	Enrich(ctx context.Context, itemName string) Enrichment
}

// RecommendationService 根据家庭信息生成防灾用品推荐
type RecommendationService struct {
	cfg       *config.Config
	generator Generator
	enricher  Enricher
	tolerance decimal.Decimal
	now       func() time.Time
}

func NewRecommendationService(cfg *config.Config, generator Generator, enricher Enricher) (*RecommendationService, error) {
	tolerance, err := ParseTolerance(cfg.Recommend.BudgetTolerance)
	if err != nil {
		return nil, err
	}
	return &RecommendationService{
		cfg:       cfg,
		generator: generator,
		enricher:  enricher,
		tolerance: tolerance,
		now:       time.Now,
	}, nil
}

// GenerateRecommendations 调用一次生成模型，按预算过滤，再并发补全图片和视频。
// 只有生成模型阶段的失败会让请求失败，不做重试。
func (s *RecommendationService) GenerateRecommendations(ctx context.Context, profile models.HouseholdProfile) ([]models.RecommendedItem, error) {
	if !s.cfg.LLMConfigured() || s.generator == nil {
		return nil, &ConfigurationError{Setting: "GEMINI_API_KEY", Message: "generative model is not configured"}
	}

	candidates, err := s.generateCandidates(ctx, profile)
	if err != nil {
		return nil, err
	}

	filtered := FilterByBudget(candidates, profile.Budget, s.tolerance)
	logger.Info("预算过滤完成",
		"candidates", len(candidates),
		"selected", len(filtered),
		"budget", profile.Budget,
		"tolerance", s.tolerance.String())

	items := s.newItems(filtered)
	s.enrichAll(ctx, items)
	return items, nil
}

func (s *RecommendationService) generateCandidates(ctx context.Context, profile models.HouseholdProfile) ([]models.Candidate, error) {
	prompt := BuildRecommendationPrompt(profile)

	llmCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.LLM.TimeoutSec)*time.Second)
	defer cancel()

	startTime := time.Now()
	text, err := s.generator.Generate(llmCtx, prompt)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.LLMRequestDuration.WithLabelValues(s.generator.Provider(), status).Observe(time.Since(startTime).Seconds())
	if err != nil {
		logger.Error("生成模型调用失败", "provider", s.generator.Provider(), "error", err)
		return nil, &UpstreamError{Op: "generate recommendations", Err: err}
	}

	candidates, err := ParseCandidates(text)
	if err != nil {
		return nil, &UpstreamError{Op: "parse recommendations", Err: err}
	}
	return candidates, nil
}

// newItems 分配响应内唯一的id，图片先使用加载中占位图
func (s *RecommendationService) newItems(candidates []models.Candidate) []models.RecommendedItem {
	stamp := s.now().UnixMilli()
	items := make([]models.RecommendedItem, len(candidates))
	for i, c := range candidates {
		items[i] = models.RecommendedItem{
			ID:          fmt.Sprintf("bousai-%d-%d", stamp, i),
			Name:        c.Name,
			Price:       c.Price,
			Description: c.Description,
			Reason:      c.Reason,
			Priority:    c.Priority,
			Category:    c.Category,
			ImageURL:    s.cfg.Recommend.LoadingImageURL,
		}
	}
	return items
}

// enrichAll 并发补全，每个任务只写自己下标的位置，所以结果保持原顺序
func (s *RecommendationService) enrichAll(ctx context.Context, items []models.RecommendedItem) {
	if s.enricher == nil || len(items) == 0 {
		for i := range items {
			items[i] = Enrichment{}.Apply(items[i], s.cfg.Recommend.NoImageURL)
		}
		return
	}

	limit := s.cfg.Recommend.MaxConcurrency
	if limit <= 0 {
		limit = -1
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i := range items {
		i := i
		g.Go(func() error {
			e := s.enricher.Enrich(ctx, items[i].Name)
			items[i] = e.Apply(items[i], s.cfg.Recommend.NoImageURL)
			logger.Debug("媒体补全完成", "item", items[i].Name, "outcome", e.Outcome.String())
			return nil
		})
	}
	_ = g.Wait()
}
