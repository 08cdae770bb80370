package repository

import (
	"pet-game/internal/model"

	"gorm.io/gorm"
)

// NotificationRepository 站内通知仓储
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建NotificationRepository实例
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create 创建通知
func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.db.Create(n).Error
}

// ListByUser 分页列出用户通知，最新在前
func (r *NotificationRepository) ListByUser(userID uint, limit, offset int) ([]*model.Notification, error) {
	var rows []*model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

// CountUnread 统计用户未读通知数
func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead 标记单条通知已读
func (r *NotificationRepository) MarkAsRead(userID, notificationID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
}

// MarkAllAsRead 标记用户全部通知已读
func (r *NotificationRepository) MarkAllAsRead(userID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
