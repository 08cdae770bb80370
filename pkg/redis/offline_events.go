package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// OfflineEvent 离线事件
// 目标用户不在线时事件进入队列，用户重连后一次性下发
type OfflineEvent struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

// 离线事件相关常量
const (
	OfflineEventsKeyPrefix = "pet:offline:events:" // 离线事件key前缀
	OfflineEventsTTL       = 7 * 24 * time.Hour    // 7天过期
	MaxOfflineEvents       = 100                   // 每用户最多保留100条
)

// AddOfflineEvent 添加离线事件
func AddOfflineEvent(userID uint, event *OfflineEvent) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineEventsKeyPrefix, userID)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化离线事件失败: %w", err)
	}

	// RPUSH 保持事件时间顺序，下发时从头部读取
	pipe := client.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, OfflineEventsTTL)
	pipe.LTrim(ctx, key, -int64(MaxOfflineEvents), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("添加离线事件失败: %w", err)
	}
	return nil
}

// GetOfflineEvents 获取用户的全部离线事件
func GetOfflineEvents(userID uint) ([]*OfflineEvent, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineEventsKeyPrefix, userID)

	results, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("获取离线事件失败: %w", err)
	}

	var events []*OfflineEvent
	for _, result := range results {
		var event OfflineEvent
		if err := json.Unmarshal([]byte(result), &event); err != nil {
			continue // 跳过无法解析的事件
		}
		events = append(events, &event)
	}
	return events, nil
}

// ClearOfflineEvents 清空用户的离线事件
func ClearOfflineEvents(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineEventsKeyPrefix, userID)
	if err := client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("清空离线事件失败: %w", err)
	}
	return nil
}

// GetOfflineEventCount 获取用户离线事件数量
func GetOfflineEventCount(userID uint) (int64, error) {
	if client == nil {
		return 0, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", OfflineEventsKeyPrefix, userID)
	count, err := client.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("获取离线事件数量失败: %w", err)
	}
	return count, nil
}
