package repository

import (
	"pet-game/internal/model"

	"gorm.io/gorm"
)

// AchievementRepository 用户成就进度仓储
type AchievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository 创建AchievementRepository实例
func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// ListByUser 列出用户的全部成就进度
func (r *AchievementRepository) ListByUser(userID uint) ([]*model.UserAchievement, error) {
	var rows []*model.UserAchievement
	err := r.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// SaveProgress 批量写回成就进度，同一事务完成
func (r *AchievementRepository) SaveProgress(rows []*model.UserAchievement) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.ID == 0 {
				if err := tx.Create(row).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListUnnotified 列出用户已完成但尚未推送的成就
func (r *AchievementRepository) ListUnnotified(userID uint) ([]*model.UserAchievement, error) {
	var rows []*model.UserAchievement
	err := r.db.Where("user_id = ? AND is_complete = ? AND notified = ?", userID, true, false).
		Order("completed_at ASC").
		Find(&rows).Error
	return rows, err
}

// MarkNotified 标记成就完成事件已推送
func (r *AchievementRepository) MarkNotified(userID uint, achievementIDs []string) error {
	if len(achievementIDs) == 0 {
		return nil
	}
	return r.db.Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id IN ?", userID, achievementIDs).
		Update("notified", true).Error
}
