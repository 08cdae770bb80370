package repository

import (
	"time"

	"pet-game/internal/model"

	"gorm.io/gorm"
)

// InvitationRepository 游戏邀请仓储
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository 创建InvitationRepository实例
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create 创建邀请
func (r *InvitationRepository) Create(inv *model.Invitation) error {
	return r.db.Create(inv).Error
}

// GetByPublicID 按对外ID获取邀请
func (r *InvitationRepository) GetByPublicID(publicID string) (*model.Invitation, error) {
	var inv model.Invitation
	if err := r.db.Where("public_id = ?", publicID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListForUser 列出用户相关的邀请（发出与收到），最新在前
func (r *InvitationRepository) ListForUser(userID uint, limit int) ([]*model.Invitation, error) {
	var invs []*model.Invitation
	err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&invs).Error
	return invs, err
}

// ListPendingReceived 列出用户收到的待处理邀请
func (r *InvitationRepository) ListPendingReceived(userID uint) ([]*model.Invitation, error) {
	var invs []*model.Invitation
	err := r.db.Where("receiver_id = ? AND status = ?", userID, model.InvitePending).
		Order("created_at DESC").
		Find(&invs).Error
	return invs, err
}

// UpdateStatus 从 PENDING 迁移到目标状态，返回受影响行数
// 行数为0表示状态已被并发修改，调用方按已结算处理
func (r *InvitationRepository) UpdateStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&model.Invitation{}).
		Where("id = ? AND status = ?", id, model.InvitePending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// ExpireOverdue 将该用户已过期的待处理邀请批量置为 EXPIRED
func (r *InvitationRepository) ExpireOverdue(userID uint) error {
	return r.db.Model(&model.Invitation{}).
		Where("(sender_id = ? OR receiver_id = ?)", userID, userID).
		Where("status = ? AND expires_at <= ?", model.InvitePending, time.Now()).
		Update("status", model.InviteExpired).Error
}
