package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"bousai_recommend/config"
)

// ImageSearcher 按商品名检索一张图片，没有结果时返回空串
type ImageSearcher interface {
	SearchImage(ctx context.Context, itemName string) (string, error)
}

type customSearchResp struct {
	Items []struct {
		Link string `json:"link"`
	} `json:"items"`
}

// GoogleImageSearcher 基于 Google Custom Search 的图片检索，限定在指定电商站点内
type GoogleImageSearcher struct {
	apiKey      string
	engineID    string
	baseURL     string
	site        string
	querySuffix string
	client      *http.Client
}

func NewGoogleImageSearcher(cfg *config.Config, client *http.Client) *GoogleImageSearcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleImageSearcher{
		apiKey:      cfg.ImageSearch.APIKey,
		engineID:    cfg.ImageSearch.EngineID,
		baseURL:     cfg.ImageSearch.BaseURL,
		site:        cfg.ImageSearch.Site,
		querySuffix: cfg.ImageSearch.QuerySuffix,
		client:      client,
	}
}

// Configured API Key 和 cx 缺一不可
func (s *GoogleImageSearcher) Configured() bool {
	return s.apiKey != "" && s.engineID != ""
}

// Query 实际发送的检索词，例如 "XXX 防災 site:amazon.co.jp"
func (s *GoogleImageSearcher) Query(itemName string) string {
	parts := []string{itemName}
	if s.querySuffix != "" {
		parts = append(parts, s.querySuffix)
	}
	if s.site != "" {
		parts = append(parts, "site:"+s.site)
	}
	return strings.Join(parts, " ")
}

func (s *GoogleImageSearcher) SearchImage(ctx context.Context, itemName string) (string, error) {
	// 未配置时不发起网络请求
	if !s.Configured() {
		return "", nil
	}

	params := url.Values{}
	params.Set("q", s.Query(itemName))
	params.Set("cx", s.engineID)
	params.Set("searchType", "image")
	params.Set("key", s.apiKey)
	params.Set("num", "1")
	params.Set("safe", "active")

	var data customSearchResp
	if err := getJSON(ctx, s.client, s.baseURL+"?"+params.Encode(), &data); err != nil {
		return "", err
	}
	if len(data.Items) == 0 {
		return "", nil
	}
	return data.Items[0].Link, nil
}
