package service

import (
	"time"

	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/logger"
	"pet-game/pkg/redis"
	"pet-game/pkg/websocket"

	"go.uber.org/zap"
)

// PresenceService 在线状态服务
// 互动时短暂切到 playing，延迟后回退 online
// 回退带 generation 守卫：期间状态又变过的话回退作废
type PresenceService struct {
	userRepo    *repository.UserRepository
	revertAfter time.Duration
}

func NewPresenceService(userRepo *repository.UserRepository, revertAfter time.Duration) *PresenceService {
	return &PresenceService{
		userRepo:    userRepo,
		revertAfter: revertAfter,
	}
}

// SetPlaying 将用户状态置为 playing，revertAfter 后自动回退 online
func (s *PresenceService) SetPlaying(userID uint, username string) {
	generation, err := redis.SetUserPresence(userID, username, model.StatusPlaying)
	if err != nil {
		logger.Warn("设置playing状态失败", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	_ = s.userRepo.UpdateStatus(userID, model.StatusPlaying)
	websocket.NotifyFriendsStatus(userID, username, model.StatusPlaying)

	time.AfterFunc(s.revertAfter, func() {
		s.revertToOnline(userID, username, generation)
	})
}

// revertToOnline 延迟回退，generation 不匹配说明期间状态已变更，放弃回退
func (s *PresenceService) revertToOnline(userID uint, username string, generation uint64) {
	presence, err := redis.GetUserPresence(userID)
	if err != nil {
		return // 已离线或TTL过期
	}
	if presence.Generation != generation || presence.Status != model.StatusPlaying {
		return
	}

	if _, err := redis.SetUserPresence(userID, username, model.StatusOnline); err != nil {
		return
	}
	_ = s.userRepo.UpdateStatus(userID, model.StatusOnline)
	websocket.NotifyFriendsStatus(userID, username, model.StatusOnline)
}

// Status 查询用户当前状态，缓存缺失视为离线
func (s *PresenceService) Status(userID uint) string {
	return redis.GetUserStatus(userID)
}
