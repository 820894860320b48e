package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bousai_recommend/config"
	"bousai_recommend/logger"
	"bousai_recommend/metrics"
	"bousai_recommend/models"
)

// Outcome 单个商品的媒体补全结果类型
type Outcome int

const (
	// OutcomeDefault 两个检索都没有结果（包括超时、出错、未配置）
	OutcomeDefault Outcome = iota
	// OutcomeEnriched 至少一个检索有结果
	OutcomeEnriched
)

func (o Outcome) String() string {
	if o == OutcomeEnriched {
		return "enriched"
	}
	return "default"
}

// Enrichment 媒体补全结果，永远不会携带错误
type Enrichment struct {
	ImageURL string
	VideoIDs []string
	Outcome  Outcome
}

// Apply 把补全结果写回商品：没有图片时使用占位图，没有视频时videoIds保持为nil
func (e Enrichment) Apply(item models.RecommendedItem, noImageURL string) models.RecommendedItem {
	item.ImageURL = noImageURL
	if e.ImageURL != "" {
		item.ImageURL = e.ImageURL
	}
	item.VideoIDs = nil
	if len(e.VideoIDs) > 0 {
		item.VideoIDs = e.VideoIDs
	}
	return item
}

// MediaEnricher 并发检索图片和视频，每个检索单独限时
type MediaEnricher struct {
	images       ImageSearcher
	videos       VideoSearcher
	imageTimeout time.Duration
	videoTimeout time.Duration
}

func NewMediaEnricher(images ImageSearcher, videos VideoSearcher, imageTimeout, videoTimeout time.Duration) *MediaEnricher {
	return &MediaEnricher{
		images:       images,
		videos:       videos,
		imageTimeout: imageTimeout,
		videoTimeout: videoTimeout,
	}
}

// NewMediaEnricherFromConfig 使用Google图片检索和YouTube检索，并各自加上熔断器
func NewMediaEnricherFromConfig(cfg *config.Config) *MediaEnricher {
	var images ImageSearcher = NewGoogleImageSearcher(cfg, nil)
	var videos VideoSearcher = NewYouTubeSearcher(cfg, nil)
	if !cfg.CircuitBreaker.Disabled {
		images = NewBreakerImageSearcher(images, cfg)
		videos = NewBreakerVideoSearcher(videos, cfg)
	}
	return NewMediaEnricher(images, videos,
		time.Duration(cfg.ImageSearch.TimeoutMs)*time.Millisecond,
		time.Duration(cfg.VideoSearch.TimeoutMs)*time.Millisecond)
}

// Enrich 为一个商品名检索媒体信息，所有失败都降级为默认值
func (e *MediaEnricher) Enrich(ctx context.Context, itemName string) Enrichment {
	var (
		wg       sync.WaitGroup
		imageURL string
		videoIDs []string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		imageURL = e.lookupImage(ctx, itemName)
	}()
	go func() {
		defer wg.Done()
		videoIDs = e.lookupVideos(ctx, itemName)
	}()
	wg.Wait()

	result := Enrichment{ImageURL: imageURL, VideoIDs: videoIDs, Outcome: OutcomeDefault}
	if imageURL != "" || len(videoIDs) > 0 {
		result.Outcome = OutcomeEnriched
	}
	return result
}

func (e *MediaEnricher) lookupImage(ctx context.Context, itemName string) string {
	if e.images == nil {
		return ""
	}
	url, err := callWithTimeout(ctx, e.imageTimeout, func(ctx context.Context) (string, error) {
		return e.images.SearchImage(ctx, itemName)
	})
	if err != nil {
		logger.Warn("图片检索失败，使用占位图", "item", itemName, "error", err)
		metrics.EnrichmentLookups.WithLabelValues("image", "error").Inc()
		return ""
	}
	if url == "" {
		metrics.EnrichmentLookups.WithLabelValues("image", "miss").Inc()
		return ""
	}
	metrics.EnrichmentLookups.WithLabelValues("image", "hit").Inc()
	return url
}

func (e *MediaEnricher) lookupVideos(ctx context.Context, itemName string) []string {
	if e.videos == nil {
		return nil
	}
	ids, err := callWithTimeout(ctx, e.videoTimeout, func(ctx context.Context) ([]string, error) {
		return e.videos.SearchVideos(ctx, itemName)
	})
	if err != nil {
		logger.Warn("视频检索失败，忽略视频", "item", itemName, "error", err)
		metrics.EnrichmentLookups.WithLabelValues("video", "error").Inc()
		return nil
	}
	if len(ids) == 0 {
		metrics.EnrichmentLookups.WithLabelValues("video", "miss").Inc()
		return nil
	}
	metrics.EnrichmentLookups.WithLabelValues("video", "hit").Inc()
	return ids
}

// callWithTimeout 在限时内执行fn；fn不响应取消时也会在超时后返回
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		v, err := fn(ctx)
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
