package service

import (
	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/redis"
)

// NotificationService 站内通知服务
// 未读计数走Redis缓存，缺失时回源数据库
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// List 分页列出通知
func (s *NotificationService) List(userID uint, limit, offset int) ([]*model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(userID, limit, offset)
}

// UnreadCount 未读通知数，优先读缓存
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	if cached, err := redis.GetNotifyCount(userID); err == nil && cached >= 0 {
		return cached, nil
	}

	count, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetNotifyCount(userID, count)
	return count, nil
}

// MarkRead 标记单条已读并重建计数缓存
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	if err := s.repo.MarkAsRead(userID, notificationID); err != nil {
		return err
	}
	count, err := s.repo.CountUnread(userID)
	if err == nil {
		_ = redis.SetNotifyCount(userID, count)
	}
	return nil
}

// MarkAllRead 全部标记已读
func (s *NotificationService) MarkAllRead(userID uint) error {
	if err := s.repo.MarkAllAsRead(userID); err != nil {
		return err
	}
	return redis.ResetNotifyCount(userID)
}
