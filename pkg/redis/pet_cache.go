package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// 宠物快照缓存相关常量
const (
	PetCacheKeyPrefix = "pet:snapshot:" // 宠物快照key前缀
)

// 缓存配置（从配置文件获取）
var PetCacheTTL = 5 * time.Minute

// SetPetCacheTTL 设置宠物快照缓存TTL
func SetPetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		PetCacheTTL = ttl
	}
}

// CachedPet 缓存的宠物快照
// 仅用于高频读取路径，写操作后必须失效
type CachedPet struct {
	PetID      uint      `json:"pet_id"`
	UserID     uint      `json:"user_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	Hunger     float64   `json:"hunger"`
	Happiness  float64   `json:"happiness"`
	Energy     float64   `json:"energy"`
	Hygiene    float64   `json:"hygiene"`
	Health     float64   `json:"health"`
	Mood       string    `json:"mood"`
	CachedAt   time.Time `json:"cached_at"`
}

// CachePetSnapshot 缓存宠物快照
func CachePetSnapshot(userID uint, snapshot *CachedPet) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PetCacheKeyPrefix, userID)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("序列化宠物快照失败: %w", err)
	}
	if err := Set(key, data, PetCacheTTL); err != nil {
		return fmt.Errorf("缓存宠物快照失败: %w", err)
	}
	return nil
}

// GetCachedPetSnapshot 获取缓存的宠物快照
func GetCachedPetSnapshot(userID uint) (*CachedPet, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PetCacheKeyPrefix, userID)

	data, err := Get(key)
	if err != nil {
		return nil, err
	}

	var snapshot CachedPet
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("反序列化宠物快照失败: %w", err)
	}
	return &snapshot, nil
}

// InvalidatePetSnapshot 使宠物快照失效
func InvalidatePetSnapshot(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", PetCacheKeyPrefix, userID)
	return Del(key)
}
