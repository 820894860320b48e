package services

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"bousai_recommend/config"
	"bousai_recommend/logger"
	"bousai_recommend/utils"
)

// OpenAIGenerator 调用OpenAI兼容的Chat Completions接口（默认指向Gemini的兼容端点）
type OpenAIGenerator struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewOpenAIGenerator 按配置创建客户端，不做自动重试
func NewOpenAIGenerator(cfg *config.Config, extra ...option.RequestOption) *OpenAIGenerator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}
	opts = append(opts, extra...)

	return &OpenAIGenerator{
		client:      openai.NewClient(opts...),
		model:       cfg.LLM.Model,
		temperature: cfg.LLMTemperature(),
		maxTokens:   cfg.LLM.MaxTokens,
	}
}

func (g *OpenAIGenerator) Provider() string { return "openai" }

// Generate 发送单条user消息，返回第一个choice的文本
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	logger.Info("调用生成模型", "provider", g.Provider(), "model", g.model)
	logger.Debug("LLM请求提示词预览", "prompt_preview", utils.Preview(prompt, 100))

	params := openai.ChatCompletionNewParams{
		Model:       g.model,
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Temperature: openai.Float(g.temperature),
	}
	if g.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(g.maxTokens)
	}

	startTime := time.Now()
	resp, err := g.client.Chat.Completions.New(ctx, params)
	logger.Info("LLM请求耗时", "duration_ms", time.Since(startTime).Milliseconds())
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	content := resp.Choices[0].Message.Content
	logger.Info("成功获取LLM响应",
		"tokens_prompt", resp.Usage.PromptTokens,
		"tokens_completion", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason)
	logger.Debug("LLM响应内容预览", "content_preview", utils.Preview(content, 200))
	return content, nil
}
