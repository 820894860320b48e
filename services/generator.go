package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"

	"bousai_recommend/config"
	"bousai_recommend/logger"
	"bousai_recommend/models"
	"bousai_recommend/utils"
)

// Generator 生成模型的最小接口：输入一段提示词，返回模型输出的文本
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Provider 用于日志和指标
	Provider() string
}

// NewGenerator 根据 llm.provider 创建生成模型客户端
func NewGenerator(cfg *config.Config) (Generator, error) {
	switch cfg.LLM.Provider {
	case "", "openai", "gemini":
		return NewOpenAIGenerator(cfg), nil
	case "anthropic":
		return NewAnthropicGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

// rawCandidate 价格按浮点解析，模型偶尔会返回小数
type rawCandidate struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Reason      string  `json:"reason"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
}

// ParseCandidates 把模型输出解析为商品列表，保持模型给出的顺序
func ParseCandidates(text string) ([]models.Candidate, error) {
	jsonContent := strings.TrimSpace(extractJSONArray(text))
	if !strings.HasPrefix(jsonContent, "[") {
		logger.Error("LLM返回的内容不是JSON数组", "content_preview", utils.Preview(text, 200))
		return nil, fmt.Errorf("parse model output: expected a JSON array")
	}

	var raws []rawCandidate
	if err := json.Unmarshal([]byte(jsonContent), &raws); err != nil {
		logger.Error("解析LLM返回的JSON内容失败", "error", err, "content_preview", utils.Preview(text, 200))
		return nil, fmt.Errorf("parse model output: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(raws))
	for i, r := range raws {
		name := strings.TrimSpace(r.Name)
		if name == "" || !validPrice(r.Price) {
			logger.Warn("跳过无效的商品", "index", i, "name", r.Name, "price", r.Price)
			continue
		}
		candidates = append(candidates, models.Candidate{
			Name:        name,
			Price:       int64(math.Round(r.Price)),
			Description: r.Description,
			Reason:      r.Reason,
			Priority:    models.NormalizePriority(models.Priority(strings.ToLower(strings.TrimSpace(r.Priority)))),
			Category:    r.Category,
		})
	}
	return candidates, nil
}

// validPrice 价格必须是有限的非负数，且取整后能放进int64
func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && math.Round(p) < math.MaxInt64
}

// extractJSONArray 从文本中提取JSON数组部分
func extractJSONArray(text string) string {
	text = utils.TrimCodeFence(text)

	startIdx := strings.Index(text, "[")
	endIdx := strings.LastIndex(text, "]")
	if startIdx >= 0 && endIdx > startIdx {
		return text[startIdx : endIdx+1]
	}

	// 找不到数组时返回原始文本，由调用方报告解析错误
	return text
}
