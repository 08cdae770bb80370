package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"pet-game/internal/game"
)

// -------------------- 系统监控 --------------------

type SystemStats struct {
	Timestamp   time.Time
	MemoryTotal uint64
	MemoryUsed  uint64
	Goroutines  int
}

type Monitor struct {
	stats    []SystemStats
	interval time.Duration
	stopChan chan struct{}
}

func NewMonitor(interval time.Duration) *Monitor {
	return &Monitor{
		stats:    make([]SystemStats, 0, 512),
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (m *Monitor) collectStats() SystemStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	stats := SystemStats{
		Timestamp:   time.Now(),
		MemoryTotal: ms.Sys,
		MemoryUsed:  ms.Alloc,
		Goroutines:  runtime.NumGoroutine(),
	}
	m.stats = append(m.stats, stats)
	return stats
}

func (m *Monitor) Start() {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.printStats(m.collectStats())
			case <-m.stopChan:
				return
			}
		}
	}()
}

func (m *Monitor) Stop() { close(m.stopChan) }

func (m *Monitor) printStats(s SystemStats) {
	fmt.Printf("[%s] 内存: %.1fMB/%.1fMB | Goroutines: %d\n",
		s.Timestamp.Format("15:04:05"),
		float64(s.MemoryUsed)/1024/1024, float64(s.MemoryTotal)/1024/1024,
		s.Goroutines,
	)
}

func (m *Monitor) GenerateReport() {
	if len(m.stats) == 0 {
		fmt.Println("没有监控数据")
		return
	}
	var sumGo, maxGo int
	for _, s := range m.stats {
		sumGo += s.Goroutines
		if s.Goroutines > maxGo {
			maxGo = s.Goroutines
		}
	}
	n := float64(len(m.stats))
	fmt.Println("\n=== 系统监控报告 ===")
	fmt.Printf("持续: %v\n", m.stats[len(m.stats)-1].Timestamp.Sub(m.stats[0].Timestamp))
	fmt.Printf("平均Goroutine: %d, 峰值Goroutine: %d\n", int(float64(sumGo)/n+0.5), maxGo)
}

// -------------------- 机器人压测 --------------------

type APITestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	AverageLatency     time.Duration
	MaxLatency         time.Duration
	MinLatency         time.Duration
	mu                 sync.Mutex
}

func (s *APITestStats) Add(success bool, latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TotalRequests++
	if success {
		s.SuccessfulRequests++
		if s.AverageLatency == 0 {
			s.AverageLatency = latency
			s.MaxLatency = latency
			s.MinLatency = latency
		} else {
			s.AverageLatency = (s.AverageLatency + latency) / 2
			if latency > s.MaxLatency {
				s.MaxLatency = latency
			}
			if latency < s.MinLatency {
				s.MinLatency = latency
			}
		}
	} else {
		s.FailedRequests++
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// bot 模拟一个玩家：注册、登录、创建宠物，然后循环照料与互动
type bot struct {
	base   string
	name   string
	token  string
	client *http.Client
	stats  *APITestStats
}

func newBot(base, name string, stats *APITestStats) *bot {
	return &bot{
		base:   base,
		name:   name,
		client: &http.Client{Timeout: 8 * time.Second},
		stats:  stats,
	}
}

func (b *bot) request(method, path string, body any) (int, *envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, b.base+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	start := time.Now()
	resp, err := b.client.Do(req)
	lat := time.Since(start)
	if err != nil {
		b.stats.Add(false, lat)
		return 0, nil, err
	}
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	b.stats.Add(resp.StatusCode < 500, lat)
	return resp.StatusCode, &env, nil
}

// setup 注册+登录+创建宠物，任何一步失败都直接放弃该机器人
func (b *bot) setup() error {
	_, _, err := b.request("POST", "/api/v1/users/register", map[string]string{
		"username": b.name,
		"email":    b.name + "@bench.local",
		"password": "bench123456",
		"nickname": "压测机器人",
	})
	if err != nil {
		return err
	}

	code, env, err := b.request("POST", "/api/v1/users/login", map[string]string{
		"usernameOrEmail": b.name,
		"password":        "bench123456",
	})
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("login failed: status %d", code)
	}

	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil || login.Token == "" {
		return fmt.Errorf("login response missing token")
	}
	b.token = login.Token

	_, _, err = b.request("POST", "/api/v1/pet", map[string]string{
		"name": b.name + "的宠物",
		"type": "cat",
	})
	return err
}

func (b *bot) play(rounds int) {
	activities := []string{"feed", "play", "walk", "pet", "groom", "train"}
	careActions := []string{"feed", "play", "sleep", "clean", "pet"}

	for i := 0; i < rounds; i++ {
		switch i % 4 {
		case 0:
			_, _, _ = b.request("GET", "/api/v1/pet", nil)
		case 1:
			// 大部分请求会命中冷却，服务端应返回429而不是500
			_, _, _ = b.request("POST", "/api/v1/pet/interact", map[string]string{
				"activity_id": activities[i%len(activities)],
			})
		case 2:
			_, _, _ = b.request("POST", "/api/v1/pet/care/"+careActions[i%len(careActions)], nil)
		case 3:
			_, _, _ = b.request("GET", "/api/v1/achievements", nil)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// searchUsers 模拟客户端逐字输入搜索框：中间前缀被防抖合并或按序号丢弃，
// 过期响应不会覆盖最终查询的结果
func (b *bot) searchUsers(target string) {
	session := game.NewSearchSession(3, 200*time.Millisecond,
		func(ctx context.Context, query string) (int, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet,
				b.base+"/api/v1/users/search?q="+url.QueryEscape(query), nil)
			if err != nil {
				return 0, err
			}
			req.Header.Set("Authorization", "Bearer "+b.token)

			start := time.Now()
			resp, err := b.client.Do(req)
			lat := time.Since(start)
			if err != nil {
				b.stats.Add(false, lat)
				return 0, err
			}
			defer resp.Body.Close()
			b.stats.Add(resp.StatusCode < 500, lat)

			var env envelope
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				return 0, err
			}
			var list []json.RawMessage
			_ = json.Unmarshal(env.Data, &list)
			return len(list), nil
		},
		func(query string, count int) {
			fmt.Printf("搜索 %q 命中 %d 个用户\n", query, count)
		})
	defer session.Close()

	session.OnError(func(query string, err error) {
		fmt.Printf("搜索 %q 请求失败: %v\n", query, err)
	})

	// 每次输入一个字符，最后等防抖窗口结束让末次查询落地
	for i := 1; i <= len(target); i++ {
		session.SetQuery(target[:i])
		time.Sleep(50 * time.Millisecond)
	}
	time.Sleep(time.Second)
}

func runBench(base string, concurrency, rounds int) {
	fmt.Println("\n=== 宠物养成API并发测试开始 ===")
	fmt.Printf("目标: %s 机器人: %d 每机器人操作: %d\n", base, concurrency, rounds)

	stats := &APITestStats{}
	var wg sync.WaitGroup
	start := time.Now()
	stamp := time.Now().UnixNano()

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			b := newBot(base, fmt.Sprintf("bench_%d_%d", stamp, id), stats)
			if err := b.setup(); err != nil {
				fmt.Printf("机器人 %d 初始化失败: %v\n", id, err)
				return
			}
			b.play(rounds)
			b.searchUsers("bench_")
		}(i)
	}

	wg.Wait()
	took := time.Since(start)

	fmt.Println("\n=== API测试结果 ===")
	fmt.Printf("耗时: %v\n", took)
	fmt.Printf("总请求: %d 成功: %d 失败: %d\n", stats.TotalRequests, stats.SuccessfulRequests, stats.FailedRequests)
	fmt.Printf("延迟 平均: %v 最大: %v 最小: %v\n", stats.AverageLatency, stats.MaxLatency, stats.MinLatency)
	if took > 0 {
		fmt.Printf("QPS: %.2f\n", float64(stats.SuccessfulRequests)/took.Seconds())
	}
	if stats.TotalRequests > 0 {
		fmt.Printf("成功率: %.2f%%\n", float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	}
}

// -------------------- 入口 --------------------

func main() {
	concurrency := 5
	rounds := 20
	monitorSeconds := 20

	if len(os.Args) > 1 {
		if val, err := strconv.Atoi(os.Args[1]); err == nil {
			concurrency = val
		}
	}
	if len(os.Args) > 2 {
		if val, err := strconv.Atoi(os.Args[2]); err == nil {
			rounds = val
		}
	}
	if len(os.Args) > 3 {
		if val, err := strconv.Atoi(os.Args[3]); err == nil {
			monitorSeconds = val
		}
	}

	baseURL := "http://localhost:8080"
	if env := os.Getenv("BENCH_BASE_URL"); env != "" {
		baseURL = env
	}

	fmt.Println("=== 宠物养成系统并发与监控测试 ===")
	fmt.Printf("开始时间: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Printf("目标: %s 机器人: %d 每机器人操作: %d 监控: %ds\n", baseURL, concurrency, rounds, monitorSeconds)

	mon := NewMonitor(1 * time.Second)
	mon.Start()
	go func() {
		time.Sleep(time.Duration(monitorSeconds) * time.Second)
		mon.Stop()
	}()

	runBench(baseURL, concurrency, rounds)

	time.Sleep(time.Duration(monitorSeconds+1) * time.Second)
	mon.GenerateReport()

	fmt.Println("\n=== 测试完成 ===")
}
