package repository

import (
	"errors"

	"pet-game/internal/model"
	"pet-game/pkg/db"

	"gorm.io/gorm"
)

type UserRepository struct {
	orm *gorm.DB
}

func NewUserRepository() *UserRepository {
	return &UserRepository{orm: db.GetDB()}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.orm.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.orm.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByIDs(ids []uint) ([]*model.User, error) {
	var users []*model.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.orm.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByUsernameOrEmail(identifier string) (*model.User, error) {
	var u model.User
	if err := r.orm.Where("username = ? OR email = ?", identifier, identifier).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateStatus 更新用户在线状态
func (r *UserRepository) UpdateStatus(id uint, status string) error {
	return r.orm.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "last_seen": gorm.Expr("NOW()")}).Error
}

// Search 按用户名或昵称前缀模糊搜索，排除自己
func (r *UserRepository) Search(query string, excludeID uint, limit int) ([]*model.User, error) {
	var users []*model.User
	pattern := query + "%"
	err := r.orm.Where("id <> ?", excludeID).
		Where("username LIKE ? OR nickname LIKE ?", pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// AddCoins 调整金币余额（正负均可）
func (r *UserRepository) AddCoins(id uint, delta int) error {
	return r.orm.Model(&model.User{}).
		Where("id = ?", id).
		Update("coins", gorm.Expr("coins + ?", delta)).Error
}

// IncrementLoginCount 累计登录次数加一，返回新值
func (r *UserRepository) IncrementLoginCount(id uint) (int, error) {
	if err := r.orm.Model(&model.User{}).
		Where("id = ?", id).
		Update("login_count", gorm.Expr("login_count + 1")).Error; err != nil {
		return 0, err
	}
	var u model.User
	if err := r.orm.Select("login_count").First(&u, id).Error; err != nil {
		return 0, err
	}
	return u.LoginCount, nil
}

// GetPreference 获取用户偏好，不存在时返回 gorm.ErrRecordNotFound
func (r *UserRepository) GetPreference(userID uint) (*model.UserPreference, error) {
	var p model.UserPreference
	if err := r.orm.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePreference 创建或更新用户偏好
func (r *UserRepository) SavePreference(pref *model.UserPreference) error {
	var existing model.UserPreference
	err := r.orm.Where("user_id = ?", pref.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.orm.Create(pref).Error
	}
	if err != nil {
		return err
	}
	pref.ID = existing.ID
	return r.orm.Save(pref).Error
}
