package models

// ErrorResponse 所有失败路径统一的错误响应体
type ErrorResponse struct {
	Error string `json:"error" example:"generative model is not configured: GEMINI_API_KEY is not set"`
}

// HealthResponse 健康检查响应，只暴露各外部服务是否已配置
type HealthResponse struct {
	Status      string          `json:"status" example:"ok"`
	Configured  map[string]bool `json:"configured"`
	LLMProvider string          `json:"llmProvider" example:"openai"`
}
