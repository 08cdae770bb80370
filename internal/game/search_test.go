package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// searchRecorder 记录 apply 回调收到的每次结果
type searchRecorder struct {
	mu      sync.Mutex
	applied []string
	notify  chan struct{}
}

func newSearchRecorder() *searchRecorder {
	return &searchRecorder{notify: make(chan struct{}, 16)}
}

func (r *searchRecorder) apply(query string, results []string) {
	r.mu.Lock()
	if results == nil {
		r.applied = append(r.applied, query+"=<空>")
	} else {
		r.applied = append(r.applied, query+"="+results[0])
	}
	r.mu.Unlock()
	r.notify <- struct{}{}
}

func (r *searchRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.applied))
	copy(out, r.applied)
	return out
}

func (r *searchRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("等待 apply 回调超时")
	}
}

func TestSearchSessionShortQueryClears(t *testing.T) {
	rec := newSearchRecorder()
	var called bool
	session := NewSearchSession(3, time.Millisecond,
		func(ctx context.Context, query string) ([]string, error) {
			called = true
			return []string{"hit:" + query}, nil
		},
		rec.apply,
	)
	defer session.Close()

	session.SetQuery("ab")
	rec.wait(t)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "ab=<空>" {
		t.Errorf("过短查询应立即清空结果: %v", got)
	}
	time.Sleep(20 * time.Millisecond)
	if called {
		t.Error("过短查询不应发起实际查询")
	}
}

func TestSearchSessionDebouncedLookup(t *testing.T) {
	rec := newSearchRecorder()
	session := NewSearchSession(3, 5*time.Millisecond,
		func(ctx context.Context, query string) ([]string, error) {
			return []string{"hit:" + query}, nil
		},
		rec.apply,
	)
	defer session.Close()

	session.SetQuery("alice")
	rec.wait(t)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "alice=hit:alice" {
		t.Errorf("防抖到期后应应用查询结果: %v", got)
	}
}

// 连续改写查询时只有最后一个生效，之前的防抖定时器全部作废
func TestSearchSessionRetypeCoalesces(t *testing.T) {
	rec := newSearchRecorder()
	var (
		mu      sync.Mutex
		queries []string
	)
	session := NewSearchSession(3, 20*time.Millisecond,
		func(ctx context.Context, query string) ([]string, error) {
			mu.Lock()
			queries = append(queries, query)
			mu.Unlock()
			return []string{"hit:" + query}, nil
		},
		rec.apply,
	)
	defer session.Close()

	session.SetQuery("ali")
	session.SetQuery("alic")
	session.SetQuery("alice")
	rec.wait(t)

	mu.Lock()
	defer mu.Unlock()
	if len(queries) != 1 || queries[0] != "alice" {
		t.Errorf("连续输入应只触发最后一次查询: %v", queries)
	}
}

// 慢响应晚到时必须被丢弃，不得覆盖更新查询的结果
func TestSearchSessionStaleResponseDiscarded(t *testing.T) {
	rec := newSearchRecorder()
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})

	session := NewSearchSession(3, time.Millisecond,
		func(ctx context.Context, query string) ([]string, error) {
			if query == "oldquery" {
				close(slowStarted)
				<-slowRelease
			}
			return []string{"hit:" + query}, nil
		},
		rec.apply,
	)
	defer session.Close()

	session.SetQuery("oldquery")
	select {
	case <-slowStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("等待慢查询启动超时")
	}

	// 慢查询挂起期间用户改写了查询
	session.SetQuery("newquery")
	rec.wait(t)

	// 放行慢查询，其结果应被序号检查丢弃
	close(slowRelease)
	time.Sleep(30 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "newquery=hit:newquery" {
		t.Errorf("过期响应不应覆盖新结果: %v", got)
	}
}

func TestSearchSessionLookupError(t *testing.T) {
	rec := newSearchRecorder()
	errDone := make(chan string, 1)
	session := NewSearchSession(3, time.Millisecond,
		func(ctx context.Context, query string) ([]string, error) {
			return nil, errors.New("后端不可用")
		},
		rec.apply,
	)
	session.OnError(func(query string, err error) {
		errDone <- query
	})
	defer session.Close()

	session.SetQuery("alice")
	select {
	case q := <-errDone:
		if q != "alice" {
			t.Errorf("错误回调查询 = %q", q)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("等待错误回调超时")
	}
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("查询失败不应应用结果: %v", got)
	}
}

func TestSearchSessionCloseStopsPending(t *testing.T) {
	rec := newSearchRecorder()
	session := NewSearchSession(3, 20*time.Millisecond,
		func(ctx context.Context, query string) ([]string, error) {
			return []string{"hit:" + query}, nil
		},
		rec.apply,
	)

	session.SetQuery("alice")
	session.Close()
	time.Sleep(50 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("关闭会话后不应再应用结果: %v", got)
	}
	// 关闭后继续设置查询是空操作
	session.SetQuery("bob")
	time.Sleep(50 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("关闭会话后 SetQuery 应为空操作: %v", got)
	}
}
