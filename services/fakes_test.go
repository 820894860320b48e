package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// fakeGenerator 返回固定文本，记录调用次数
type fakeGenerator struct {
	text   string
	err    error
	calls  atomic.Int32
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.prompt = prompt
	return f.text, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }

// fakeImageSearcher 按商品名返回图片，可对指定商品加延迟或错误
type fakeImageSearcher struct {
	mu     sync.Mutex
	urls   map[string]string
	delays map[string]time.Duration
	errs   map[string]error
	calls  atomic.Int32
}

func (f *fakeImageSearcher) SearchImage(ctx context.Context, name string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	delay, url, err := f.delays[name], f.urls[name], f.errs[name]
	f.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return url, err
}

type fakeVideoSearcher struct {
	mu     sync.Mutex
	ids    map[string][]string
	delays map[string]time.Duration
	errs   map[string]error
	calls  atomic.Int32
}

func (f *fakeVideoSearcher) SearchVideos(ctx context.Context, name string) ([]string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	delay, ids, err := f.delays[name], f.ids[name], f.errs[name]
	f.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return ids, err
}

// stubbornImageSearcher 忽略ctx且一直阻塞，用于验证限时
type stubbornImageSearcher struct {
	release chan struct{}
}

func (s *stubbornImageSearcher) SearchImage(context.Context, string) (string, error) {
	<-s.release
	return "https://late.example/img.jpg", nil
}

type panicVideoSearcher struct{}

func (panicVideoSearcher) SearchVideos(context.Context, string) ([]string, error) {
	panic("boom")
}

var errLookup = errors.New("lookup failed")
