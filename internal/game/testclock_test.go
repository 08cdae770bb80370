package game

import (
	"testing"
	"time"
)

// fakeClock 测试用可控时钟
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// useFakeClock 在测试期间替换包级时钟，测试结束后恢复
func useFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	saved := TimeNow
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	TimeNow = clock.Now
	t.Cleanup(func() { TimeNow = saved })
	return clock
}
