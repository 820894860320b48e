package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bousai_recommend/config"
)

// VideoSearcher 按商品名检索评测视频，返回按相关度排序的视频ID
type VideoSearcher interface {
	SearchVideos(ctx context.Context, itemName string) ([]string, error)
}

type youtubeSearchResp struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// YouTubeSearcher 基于 YouTube Data API v3 的视频检索
type YouTubeSearcher struct {
	apiKey      string
	baseURL     string
	querySuffix string
	maxResults  int
	client      *http.Client
}

func NewYouTubeSearcher(cfg *config.Config, client *http.Client) *YouTubeSearcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTubeSearcher{
		apiKey:      cfg.VideoSearch.APIKey,
		baseURL:     cfg.VideoSearch.BaseURL,
		querySuffix: cfg.VideoSearch.QuerySuffix,
		maxResults:  cfg.VideoSearch.MaxResults,
		client:      client,
	}
}

func (s *YouTubeSearcher) Configured() bool {
	return s.apiKey != ""
}

// Query 实际发送的检索词，例如 "XXX レビュー"
func (s *YouTubeSearcher) Query(itemName string) string {
	return strings.TrimSpace(itemName + " " + s.querySuffix)
}

func (s *YouTubeSearcher) SearchVideos(ctx context.Context, itemName string) ([]string, error) {
	if !s.Configured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(s.maxResults))
	params.Set("q", s.Query(itemName))
	params.Set("type", "video")
	params.Set("key", s.apiKey)

	var data youtubeSearchResp
	if err := getJSON(ctx, s.client, s.baseURL+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(data.Items))
	for _, item := range data.Items {
		if item.ID.VideoID == "" {
			continue
		}
		ids = append(ids, item.ID.VideoID)
		if len(ids) == s.maxResults {
			break
		}
	}
	return ids, nil
}
