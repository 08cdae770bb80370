package repository

import (
	"pet-game/internal/model"

	"gorm.io/gorm"
)

// FriendRepository 好友关系与好友请求仓储
type FriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository 创建FriendRepository实例
func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// ListFriendIDs 列出用户的全部好友ID
func (r *FriendRepository) ListFriendIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	return ids, err
}

// AreFriends 判断两个用户是否为好友
func (r *FriendRepository) AreFriends(userID, friendID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	return count > 0, err
}

// CountFriends 统计用户好友数量
func (r *FriendRepository) CountFriends(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// RemoveFriendship 双向删除好友关系
func (r *FriendRepository) RemoveFriendship(userID, friendID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND friend_id = ?", userID, friendID).
			Delete(&model.Friendship{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND friend_id = ?", friendID, userID).
			Delete(&model.Friendship{}).Error
	})
}

// CreateRequest 创建好友请求
func (r *FriendRepository) CreateRequest(req *model.FriendRequest) error {
	return r.db.Create(req).Error
}

// GetRequestByID 按ID获取好友请求
func (r *FriendRepository) GetRequestByID(id uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// HasPendingRequest 两个用户之间是否存在任一方向的待处理请求
func (r *FriendRepository) HasPendingRequest(userID, otherID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.FriendRequest{}).
		Where("status = ?", model.RequestPending).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListPendingReceived 列出用户收到的待处理请求
func (r *FriendRepository) ListPendingReceived(userID uint) ([]*model.FriendRequest, error) {
	var reqs []*model.FriendRequest
	err := r.db.Where("receiver_id = ? AND status = ?", userID, model.RequestPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// ListPendingSent 列出用户发出的待处理请求
func (r *FriendRepository) ListPendingSent(userID uint) ([]*model.FriendRequest, error) {
	var reqs []*model.FriendRequest
	err := r.db.Where("sender_id = ? AND status = ?", userID, model.RequestPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// AcceptRequest 接受好友请求：更新请求状态并双向建立好友关系，同一事务完成
func (r *FriendRepository) AcceptRequest(req *model.FriendRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.FriendRequest{}).
			Where("id = ? AND status = ?", req.ID, model.RequestPending).
			Update("status", model.RequestAccepted).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.Friendship{
			UserID:   req.SenderID,
			FriendID: req.ReceiverID,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&model.Friendship{
			UserID:   req.ReceiverID,
			FriendID: req.SenderID,
		}).Error
	})
}

// RejectRequest 拒绝好友请求
func (r *FriendRepository) RejectRequest(requestID uint) error {
	return r.db.Model(&model.FriendRequest{}).
		Where("id = ? AND status = ?", requestID, model.RequestPending).
		Update("status", model.RequestRejected).Error
}
