package redis

import (
	"fmt"
	"strconv"
	"time"
)

// 未读通知计数相关常量
const (
	NotifyCountKeyPrefix = "pet:notify:unread:" // 未读通知计数key前缀
	NotifyCountTTL       = 24 * time.Hour       // 计数缓存TTL
)

// IncrementNotifyCount 增加用户未读通知计数
func IncrementNotifyCount(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", NotifyCountKeyPrefix, userID)

	if err := client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("增加未读通知计数失败: %w", err)
	}
	if err := client.Expire(ctx, key, NotifyCountTTL).Err(); err != nil {
		return fmt.Errorf("设置未读通知计数TTL失败: %w", err)
	}
	return nil
}

// GetNotifyCount 获取用户未读通知计数
// key不存在返回-1，由调用方回源数据库
func GetNotifyCount(userID uint) (int64, error) {
	if client == nil {
		return 0, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", NotifyCountKeyPrefix, userID)

	result, err := client.Get(ctx, key).Result()
	if err != nil {
		if err.Error() == "redis: nil" {
			return -1, nil
		}
		return 0, fmt.Errorf("获取未读通知计数失败: %w", err)
	}

	count, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("解析未读通知计数失败: %w", err)
	}
	return count, nil
}

// SetNotifyCount 设置用户未读通知计数（回源后写回）
func SetNotifyCount(userID uint, count int64) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", NotifyCountKeyPrefix, userID)
	if err := client.Set(ctx, key, count, NotifyCountTTL).Err(); err != nil {
		return fmt.Errorf("设置未读通知计数失败: %w", err)
	}
	return nil
}

// ResetNotifyCount 重置用户未读通知计数为0
func ResetNotifyCount(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", NotifyCountKeyPrefix, userID)
	if err := client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("重置未读通知计数失败: %w", err)
	}
	return nil
}
