package game

import (
	"context"
	"sync"
	"time"
)

// SearchSession 带防抖的搜索会话
// 跟踪查询序号而不是简单的"搜索中"布尔值：新查询使旧查询作废，
// 旧查询的响应即使更晚到达也会被丢弃，不会覆盖新结果。
// 会话销毁时取消挂起的防抖定时器和在途请求
type SearchSession[T any] struct {
	mu       sync.Mutex
	lookup   func(ctx context.Context, query string) (T, error)
	apply    func(query string, results T)
	onError  func(query string, err error)
	minLen   int
	debounce time.Duration
	seq      uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	closed   bool
}

// NewSearchSession 创建搜索会话
// lookup 执行实际查询（可能慢、可能失败）；apply 在查询仍然有效时应用结果
func NewSearchSession[T any](
	minLen int,
	debounce time.Duration,
	lookup func(ctx context.Context, query string) (T, error),
	apply func(query string, results T),
) *SearchSession[T] {
	return &SearchSession[T]{
		lookup:   lookup,
		apply:    apply,
		minLen:   minLen,
		debounce: debounce,
	}
}

// OnError 设置查询失败时的回调（可选）
func (s *SearchSession[T]) OnError(fn func(query string, err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// SetQuery 更新当前查询
// 每次调用递增序号使先前的查询作废；低于最小长度时清空结果并不发起查询
func (s *SearchSession[T]) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if len([]rune(query)) < s.minLen {
		var zero T
		s.apply(query, zero)
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(seq, query)
	})
}

// fire 防抖到期后执行查询
func (s *SearchSession[T]) fire(seq uint64, query string) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	results, err := s.lookup(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	// 响应到达时查询可能已经过期，过期响应一律丢弃
	if s.closed || seq != s.seq {
		return
	}
	if err != nil {
		if s.onError != nil {
			s.onError(query, err)
		}
		return
	}
	s.apply(query, results)
}

// Close 销毁会话：取消挂起的防抖定时器和在途请求，之后的结果不再应用
func (s *SearchSession[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
