package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 默认值
const (
	DefaultPort            = 8080
	DefaultLLMProvider     = "openai"
	DefaultLLMModel        = "gemini-2.0-flash"
	DefaultLLMBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultAnthropicModel  = "claude-3-5-haiku-latest"
	DefaultLLMTimeoutSec   = 60
	DefaultLLMMaxTokens    = 4096
	DefaultLLMTemperature  = 0.7
	DefaultImageSearchURL  = "https://www.googleapis.com/customsearch/v1"
	DefaultImageSite       = "amazon.co.jp"
	DefaultImageSuffix     = "防災"
	DefaultImageTimeoutMs  = 2000
	DefaultVideoSearchURL  = "https://www.googleapis.com/youtube/v3/search"
	DefaultVideoSuffix     = "レビュー"
	DefaultVideoMaxResults = 3
	DefaultVideoTimeoutMs  = 3000
	DefaultBudgetTolerance = "1.1"
	DefaultMaxConcurrency  = 8
	DefaultLoadingImageURL = "https://placehold.co/400x300?text=Loading..."
	DefaultNoImageURL      = "https://placehold.co/400x300?text=No+Image"
	DefaultRateLimitReqs   = 30
	DefaultRateLimitWindow = 60
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	LLM struct {
		Provider    string   `yaml:"provider"` // openai / anthropic
		APIKey      string   `yaml:"api_key"`
		Model       string   `yaml:"model"`
		BaseURL     string   `yaml:"base_url"`
		MaxTokens   int64    `yaml:"max_tokens"`
		Temperature *float64 `yaml:"temperature"` // 未设置时使用默认值，0 是合法取值
		TimeoutSec  int      `yaml:"timeout_sec"` // 生成模型调用超时，单位：秒
	} `yaml:"llm"`
	ImageSearch struct {
		APIKey      string `yaml:"api_key"`
		EngineID    string `yaml:"engine_id"` // Google Custom Search 的 cx
		BaseURL     string `yaml:"base_url"`
		Site        string `yaml:"site"`         // 限定检索的电商站点
		QuerySuffix string `yaml:"query_suffix"` // 追加在商品名后的检索词
		TimeoutMs   int    `yaml:"timeout_ms"`
	} `yaml:"image_search"`
	VideoSearch struct {
		APIKey      string `yaml:"api_key"`
		BaseURL     string `yaml:"base_url"`
		QuerySuffix string `yaml:"query_suffix"`
		MaxResults  int    `yaml:"max_results"`
		TimeoutMs   int    `yaml:"timeout_ms"`
	} `yaml:"video_search"`
	Recommend struct {
		BudgetTolerance string `yaml:"budget_tolerance"` // 预算上浮系数，十进制字符串
		MaxConcurrency  int    `yaml:"max_concurrency"`  // 媒体补全并发数
		LoadingImageURL string `yaml:"loading_image_url"`
		NoImageURL      string `yaml:"no_image_url"`
	} `yaml:"recommend"`
	CircuitBreaker struct {
		Disabled         bool    `yaml:"disabled"`
		MaxRequests      uint32  `yaml:"max_requests"`       // 半开状态允许的请求数
		IntervalSec      int     `yaml:"interval_sec"`       // 关闭状态下计数重置周期
		TimeoutSec       int     `yaml:"timeout_sec"`        // 打开状态持续时间
		MinRequests      uint32  `yaml:"min_requests"`       // 触发熔断的最小请求数
		FailureThreshold float64 `yaml:"failure_threshold"` // 失败率阈值
	} `yaml:"circuit_breaker"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	RateLimit struct {
		Disabled  bool `yaml:"disabled"`
		Requests  int  `yaml:"requests"`
		WindowSec int  `yaml:"window_sec"`
	} `yaml:"rate_limit"`
}

// LLMConfigured 生成模型的密钥是否已配置
func (c *Config) LLMConfigured() bool {
	return strings.TrimSpace(c.LLM.APIKey) != ""
}

// LLMTemperature 配置的采样温度，未设置时返回默认值
func (c *Config) LLMTemperature() float64 {
	if c.LLM.Temperature == nil {
		return DefaultLLMTemperature
	}
	return *c.LLM.Temperature
}

// ImageSearchConfigured 图片检索需要 API Key 和 cx 两项
func (c *Config) ImageSearchConfigured() bool {
	return c.ImageSearch.APIKey != "" && c.ImageSearch.EngineID != ""
}

// VideoSearchConfigured 视频检索只需要 API Key
func (c *Config) VideoSearchConfigured() bool {
	return c.VideoSearch.APIKey != ""
}

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	path := getenv("CONFIG_FILE", "config.yaml")
	cfg, err := LoadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
		}
		cfg = &Config{}
		log.Println("配置从环境变量加载，部分配置使用默认值")
	} else {
		log.Printf("Loading configuration from %s", path)
	}

	applyEnv(cfg)
	cfg.applyDefaults()
	return cfg
}

// LoadFile 只解析yaml文件，不读取环境变量
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// applyEnv 从环境变量中加载敏感信息，环境变量优先于配置文件
func applyEnv(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	// 生成模型密钥
	if apiKey := firstEnv("LLM_API_KEY", "GEMINI_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}

	// YouTube 密钥，图片检索在未单独配置时共用此密钥
	if apiKey := os.Getenv("YOUTUBE_API_KEY"); apiKey != "" {
		cfg.VideoSearch.APIKey = apiKey
	}
	if apiKey := os.Getenv("GOOGLE_SEARCH_API_KEY"); apiKey != "" {
		cfg.ImageSearch.APIKey = apiKey
	}
	if cfg.ImageSearch.APIKey == "" {
		cfg.ImageSearch.APIKey = cfg.VideoSearch.APIKey
	}
	if cx := os.Getenv("GOOGLE_SEARCH_ENGINE_ID"); cx != "" {
		cfg.ImageSearch.EngineID = cx
	}
}

// applyDefaults 为未设置的字段填充默认值
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	c.Server.Addr = fmt.Sprintf(":%d", c.Server.Port)

	if c.LLM.Provider == "" {
		c.LLM.Provider = DefaultLLMProvider
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	if c.LLM.Model == "" {
		if c.LLM.Provider == "anthropic" {
			c.LLM.Model = DefaultAnthropicModel
		} else {
			c.LLM.Model = DefaultLLMModel
		}
	}
	if c.LLM.BaseURL == "" && c.LLM.Provider != "anthropic" {
		c.LLM.BaseURL = DefaultLLMBaseURL
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = DefaultLLMMaxTokens
	}
	if c.LLM.Temperature == nil {
		t := DefaultLLMTemperature
		c.LLM.Temperature = &t
	}
	if c.LLM.TimeoutSec <= 0 {
		c.LLM.TimeoutSec = DefaultLLMTimeoutSec
	}

	if c.ImageSearch.BaseURL == "" {
		c.ImageSearch.BaseURL = DefaultImageSearchURL
	}
	if c.ImageSearch.Site == "" {
		c.ImageSearch.Site = DefaultImageSite
	}
	if c.ImageSearch.QuerySuffix == "" {
		c.ImageSearch.QuerySuffix = DefaultImageSuffix
	}
	if c.ImageSearch.TimeoutMs <= 0 {
		c.ImageSearch.TimeoutMs = DefaultImageTimeoutMs
	}

	if c.VideoSearch.BaseURL == "" {
		c.VideoSearch.BaseURL = DefaultVideoSearchURL
	}
	if c.VideoSearch.QuerySuffix == "" {
		c.VideoSearch.QuerySuffix = DefaultVideoSuffix
	}
	if c.VideoSearch.MaxResults <= 0 {
		c.VideoSearch.MaxResults = DefaultVideoMaxResults
	}
	if c.VideoSearch.TimeoutMs <= 0 {
		c.VideoSearch.TimeoutMs = DefaultVideoTimeoutMs
	}

	if c.Recommend.BudgetTolerance == "" {
		c.Recommend.BudgetTolerance = DefaultBudgetTolerance
	}
	if c.Recommend.MaxConcurrency <= 0 {
		c.Recommend.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.Recommend.LoadingImageURL == "" {
		c.Recommend.LoadingImageURL = DefaultLoadingImageURL
	}
	if c.Recommend.NoImageURL == "" {
		c.Recommend.NoImageURL = DefaultNoImageURL
	}

	if c.CircuitBreaker.MaxRequests == 0 {
		c.CircuitBreaker.MaxRequests = 3
	}
	if c.CircuitBreaker.IntervalSec <= 0 {
		c.CircuitBreaker.IntervalSec = 60
	}
	if c.CircuitBreaker.TimeoutSec <= 0 {
		c.CircuitBreaker.TimeoutSec = 30
	}
	if c.CircuitBreaker.MinRequests == 0 {
		c.CircuitBreaker.MinRequests = 10
	}
	if c.CircuitBreaker.FailureThreshold <= 0 {
		c.CircuitBreaker.FailureThreshold = 0.6
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = DefaultRateLimitReqs
	}
	if c.RateLimit.WindowSec <= 0 {
		c.RateLimit.WindowSec = DefaultRateLimitWindow
	}
}

// Default 返回仅包含默认值的配置，主要用于测试和命令行
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
