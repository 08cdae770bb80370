package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-game/internal/game"
	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/jwt"
	"pet-game/pkg/logger"
	"pet-game/pkg/password"
	"pet-game/pkg/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	repo       *repository.UserRepository
	achSvc     *AchievementService
	jwtService *jwt.JWTService
}

func NewUserService(repo *repository.UserRepository, achSvc *AchievementService, jwtService *jwt.JWTService) *UserService {
	return &UserService{repo: repo, achSvc: achSvc, jwtService: jwtService}
}

// Register 注册
func (s *UserService) Register(username, email, plainPassword, nickname string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || plainPassword == "" {
		return nil, "", errors.New("用户名和密码不能为空")
	}
	if err := password.Validate(plainPassword); err != nil {
		return nil, "", err
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Nickname:     nickname,
		Status:       model.StatusOffline,
		LastSeen:     time.Now(),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	// 默认偏好
	if err := s.repo.SavePreference(&model.UserPreference{
		UserID:       user.ID,
		SoundEnabled: true,
		NotifyFriend: true,
		NotifyInvite: true,
		Theme:        "light",
	}); err != nil {
		logger.Warn("创建默认偏好失败", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	token, err := s.jwtService.GenerateToken(
		fmt.Sprintf("%d", user.ID),
		map[string]interface{}{"username": user.Username},
	)
	if err != nil {
		return nil, "", err
	}
	logger.Info("用户注册成功", zap.Uint("user_id", user.ID), zap.String("username", username))
	return user, token, nil
}

// Login 登录
// 成功后累计登录次数并推进登录类成就
func (s *UserService) Login(identifier, plainPassword string) (*model.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plainPassword == "" {
		return nil, "", errors.New("用户名和密码不能为空")
	}
	u, err := s.repo.GetByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidPassword
		}
		return nil, "", err
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", ErrInvalidPassword
	}

	if _, err := s.repo.IncrementLoginCount(u.ID); err == nil {
		if _, err := s.achSvc.AddProgress(u.ID, game.ProgressLoginCount, 1); err != nil {
			logger.Warn("登录成就进度更新失败", zap.Uint("user_id", u.ID), zap.Error(err))
		}
	}

	token, err := s.jwtService.GenerateToken(
		fmt.Sprintf("%d", u.ID),
		map[string]interface{}{"username": u.Username},
	)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout 登出：清理在线状态
func (s *UserService) Logout(userID uint) error {
	if err := s.repo.UpdateStatus(userID, model.StatusOffline); err != nil {
		return err
	}
	return redis.RemoveUserPresence(userID)
}

// GetProfile 获取用户资料
func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetPreference 获取用户偏好，缺失时返回默认值
func (s *UserService) GetPreference(userID uint) (*model.UserPreference, error) {
	p, err := s.repo.GetPreference(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserPreference{
			UserID:       userID,
			SoundEnabled: true,
			NotifyFriend: true,
			NotifyInvite: true,
			Theme:        "light",
		}, nil
	}
	return p, err
}

// UpdatePreference 更新用户偏好
func (s *UserService) UpdatePreference(pref *model.UserPreference) error {
	return s.repo.SavePreference(pref)
}
