package game

import (
	"math"
	"time"
)

// CooldownTable 按活动ID记录绝对过期时间的冷却表
// 不依赖内部定时器：剩余时间总是按需从过期时间与当前时间计算，
// 持久化后的过期时间戳在重启后仍然有效
type CooldownTable struct {
	expiries map[string]time.Time
}

// NewCooldownTable 创建空冷却表
func NewCooldownTable() *CooldownTable {
	return &CooldownTable{expiries: make(map[string]time.Time)}
}

// RestoreCooldownTable 从持久化快照恢复冷却表
func RestoreCooldownTable(snapshot map[string]time.Time) *CooldownTable {
	t := NewCooldownTable()
	for id, expiry := range snapshot {
		t.expiries[id] = expiry
	}
	return t
}

// Check 活动是否就绪：无记录或已过期都视为就绪
func (t *CooldownTable) Check(activityID string) bool {
	expiry, ok := t.expiries[activityID]
	if !ok {
		return true
	}
	return !TimeNow().Before(expiry)
}

// Start 启动冷却，过期时间 = 当前时间 + 配置的冷却时长
// 重复启动会覆盖旧记录
func (t *CooldownTable) Start(activityID string, d time.Duration) {
	t.expiries[activityID] = TimeNow().Add(d)
}

// Remaining 剩余冷却秒数，向上取整；就绪时返回0
func (t *CooldownTable) Remaining(activityID string) int {
	expiry, ok := t.expiries[activityID]
	if !ok {
		return 0
	}
	remaining := expiry.Sub(TimeNow())
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}

// Expiry 返回指定活动的过期时间（用于持久化单条记录）
func (t *CooldownTable) Expiry(activityID string) (time.Time, bool) {
	expiry, ok := t.expiries[activityID]
	return expiry, ok
}

// Snapshot 导出冷却表快照（用于持久化）
func (t *CooldownTable) Snapshot() map[string]time.Time {
	out := make(map[string]time.Time, len(t.expiries))
	for id, expiry := range t.expiries {
		out[id] = expiry
	}
	return out
}

// Prune 删除已过期的记录；过期记录在逻辑上等价于不存在，清理只是瘦身
func (t *CooldownTable) Prune() {
	now := TimeNow()
	for id, expiry := range t.expiries {
		if !now.Before(expiry) {
			delete(t.expiries, id)
		}
	}
}
