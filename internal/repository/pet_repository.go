package repository

import (
	"errors"
	"time"

	"pet-game/internal/model"

	"gorm.io/gorm"
)

// PetRepository 宠物数据仓储
type PetRepository struct {
	db *gorm.DB
}

// NewPetRepository 创建PetRepository实例
func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

// Create 创建宠物
func (r *PetRepository) Create(pet *model.Pet) error {
	return r.db.Create(pet).Error
}

// GetByUserID 按主人查找宠物
func (r *PetRepository) GetByUserID(userID uint) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.Where("user_id = ?", userID).First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// Save 保存宠物全部字段
func (r *PetRepository) Save(pet *model.Pet) error {
	return r.db.Save(pet).Error
}

// GetCooldowns 获取宠物的全部未过期冷却
func (r *PetRepository) GetCooldowns(petID uint) ([]*model.PetCooldown, error) {
	var cooldowns []*model.PetCooldown
	err := r.db.Where("pet_id = ? AND expires_at > ?", petID, time.Now()).
		Find(&cooldowns).Error
	return cooldowns, err
}

// UpsertCooldown 写入或刷新一条冷却记录
func (r *PetRepository) UpsertCooldown(petID uint, activityID string, expiresAt time.Time) error {
	var existing model.PetCooldown
	err := r.db.Where("pet_id = ? AND activity_id = ?", petID, activityID).First(&existing).Error
	if err == nil {
		existing.ExpiresAt = expiresAt
		return r.db.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(&model.PetCooldown{
		PetID:      petID,
		ActivityID: activityID,
		ExpiresAt:  expiresAt,
	}).Error
}

// PruneCooldowns 删除宠物的过期冷却记录
func (r *PetRepository) PruneCooldowns(petID uint) error {
	return r.db.Where("pet_id = ? AND expires_at <= ?", petID, time.Now()).
		Delete(&model.PetCooldown{}).Error
}
