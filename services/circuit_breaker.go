package services

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"bousai_recommend/config"
	"bousai_recommend/logger"
	"bousai_recommend/metrics"
)

// newCircuitBreaker 按配置创建熔断器：失败率达到阈值且请求数足够时打开
func newCircuitBreaker[T any](name string, cfg *config.Config) *gobreaker.CircuitBreaker[T] {
	cbCfg := cfg.CircuitBreaker
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cbCfg.MaxRequests,
		Interval:    time.Duration(cbCfg.IntervalSec) * time.Second,
		Timeout:     time.Duration(cbCfg.TimeoutSec) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cbCfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cbCfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

// BreakerImageSearcher 为图片检索加上熔断保护，熔断打开时直接返回错误，不发起请求
type BreakerImageSearcher struct {
	next ImageSearcher
	cb   *gobreaker.CircuitBreaker[string]
}

func NewBreakerImageSearcher(next ImageSearcher, cfg *config.Config) *BreakerImageSearcher {
	return &BreakerImageSearcher{next: next, cb: newCircuitBreaker[string]("image-search", cfg)}
}

func (b *BreakerImageSearcher) SearchImage(ctx context.Context, itemName string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.SearchImage(ctx, itemName)
	})
}

// State 当前熔断器状态
func (b *BreakerImageSearcher) State() gobreaker.State { return b.cb.State() }

// BreakerVideoSearcher 为视频检索加上熔断保护
type BreakerVideoSearcher struct {
	next VideoSearcher
	cb   *gobreaker.CircuitBreaker[[]string]
}

func NewBreakerVideoSearcher(next VideoSearcher, cfg *config.Config) *BreakerVideoSearcher {
	return &BreakerVideoSearcher{next: next, cb: newCircuitBreaker[[]string]("video-search", cfg)}
}

func (b *BreakerVideoSearcher) SearchVideos(ctx context.Context, itemName string) ([]string, error) {
	return b.cb.Execute(func() ([]string, error) {
		return b.next.SearchVideos(ctx, itemName)
	})
}

func (b *BreakerVideoSearcher) State() gobreaker.State { return b.cb.State() }
