package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"bousai_recommend/config"
	"bousai_recommend/logger"
	"bousai_recommend/utils"
)

// AnthropicGenerator 使用Anthropic Messages API
type AnthropicGenerator struct {
	client      anthropic.Client
	model       anthropic.Model
	temperature float64
	maxTokens   int64
}

func NewAnthropicGenerator(cfg *config.Config, extra ...option.RequestOption) *AnthropicGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}
	opts = append(opts, extra...)

	return &AnthropicGenerator{
		client:      anthropic.NewClient(opts...),
		model:       anthropic.Model(cfg.LLM.Model),
		temperature: cfg.LLMTemperature(),
		maxTokens:   cfg.LLM.MaxTokens,
	}
}

func (g *AnthropicGenerator) Provider() string { return "anthropic" }

// Generate 拼接返回内容中的全部文本块
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	logger.Info("调用生成模型", "provider", g.Provider(), "model", string(g.model))
	logger.Debug("LLM请求提示词预览", "prompt_preview", utils.Preview(prompt, 100))

	startTime := time.Now()
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: anthropic.Float(g.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	logger.Info("LLM请求耗时", "duration_ms", time.Since(startTime).Milliseconds())
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content returned")
	}

	logger.Info("成功获取LLM响应",
		"tokens_input", resp.Usage.InputTokens,
		"tokens_output", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason)
	logger.Debug("LLM响应内容预览", "content_preview", utils.Preview(b.String(), 200))
	return b.String(), nil
}
