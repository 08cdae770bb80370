package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// PresenceData 在线状态数据
// Generation 每次状态变更自增，用于丢弃过期的延迟回退
type PresenceData struct {
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Status     string    `json:"status"` // online/offline/playing
	Generation uint64    `json:"generation"`
	LastSeen   time.Time `json:"last_seen"`
}

// 在线状态相关常量
const (
	PresenceKeyPrefix = "pet:presence:user:" // 用户在线状态key前缀
	OnlineUsersKey    = "pet:online:users"   // 在线用户集合key
	PresenceTTL       = 2 * time.Minute      // 在线状态TTL（2倍心跳周期）
)

// SetUserPresence 设置用户在线状态，返回本次写入的 generation
func SetUserPresence(userID uint, username string, status string) (uint64, error) {
	if client == nil {
		return 0, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PresenceKeyPrefix, userID)

	var generation uint64 = 1
	if prev, err := GetUserPresence(userID); err == nil {
		generation = prev.Generation + 1
	}

	presence := PresenceData{
		UserID:     userID,
		Username:   username,
		Status:     status,
		Generation: generation,
		LastSeen:   time.Now(),
	}

	data, err := json.Marshal(presence)
	if err != nil {
		return 0, fmt.Errorf("序列化在线状态失败: %w", err)
	}

	if err := Set(key, data, PresenceTTL); err != nil {
		return 0, fmt.Errorf("设置用户在线状态失败: %w", err)
	}

	// 更新在线用户集合，playing 也算在线
	if status == "offline" {
		err = client.SRem(ctx, OnlineUsersKey, userID).Err()
	} else {
		err = client.SAdd(ctx, OnlineUsersKey, userID).Err()
	}
	if err != nil {
		return 0, fmt.Errorf("更新在线用户集合失败: %w", err)
	}

	return generation, nil
}

// GetUserPresence 获取用户在线状态
func GetUserPresence(userID uint) (*PresenceData, error) {
	key := fmt.Sprintf("%s%d", PresenceKeyPrefix, userID)

	data, err := Get(key)
	if err != nil {
		return nil, fmt.Errorf("获取用户在线状态失败: %w", err)
	}

	var presence PresenceData
	if err := json.Unmarshal([]byte(data), &presence); err != nil {
		return nil, fmt.Errorf("反序列化在线状态失败: %w", err)
	}
	return &presence, nil
}

// GetUserStatus 获取用户状态字符串，缓存缺失视为离线
func GetUserStatus(userID uint) string {
	presence, err := GetUserPresence(userID)
	if err != nil {
		return "offline"
	}
	return presence.Status
}

// IsUserOnline 检查用户是否在线
func IsUserOnline(userID uint) (bool, error) {
	key := fmt.Sprintf("%s%d", PresenceKeyPrefix, userID)

	exists, err := Exists(key)
	if err != nil {
		return false, fmt.Errorf("检查用户在线状态失败: %w", err)
	}
	return exists > 0, nil
}

// GetOnlineUsers 获取所有在线用户ID列表
func GetOnlineUsers() ([]uint, error) {
	members, err := client.SMembers(ctx, OnlineUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("获取在线用户列表失败: %w", err)
	}

	var userIDs []uint
	for _, member := range members {
		var userID uint
		if _, err := fmt.Sscanf(member, "%d", &userID); err == nil {
			userIDs = append(userIDs, userID)
		}
	}
	return userIDs, nil
}

// RefreshUserPresence 刷新用户在线状态（延长TTL）
func RefreshUserPresence(userID uint) error {
	key := fmt.Sprintf("%s%d", PresenceKeyPrefix, userID)

	exists, err := Exists(key)
	if err != nil {
		return fmt.Errorf("检查用户状态失败: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("用户不在线")
	}

	if err := Expire(key, PresenceTTL); err != nil {
		return fmt.Errorf("刷新用户在线状态失败: %w", err)
	}
	return nil
}

// RemoveUserPresence 移除用户在线状态
func RemoveUserPresence(userID uint) error {
	key := fmt.Sprintf("%s%d", PresenceKeyPrefix, userID)

	if err := Del(key); err != nil {
		return fmt.Errorf("删除用户在线状态失败: %w", err)
	}
	if err := client.SRem(ctx, OnlineUsersKey, userID).Err(); err != nil {
		return fmt.Errorf("从在线用户集合移除失败: %w", err)
	}
	return nil
}

// CleanExpiredPresence 清理过期的在线状态（定期任务）
func CleanExpiredPresence() error {
	userIDs, err := GetOnlineUsers()
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		key := fmt.Sprintf("%s%d", PresenceKeyPrefix, userID)
		ttl, err := TTL(key)
		if err != nil {
			continue
		}
		// TTL为-2表示key已不存在
		if ttl == -2 || ttl == -1 {
			client.SRem(ctx, OnlineUsersKey, userID)
		}
	}
	return nil
}
