package service

import (
	"encoding/json"
	"fmt"

	"pet-game/internal/game"
	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/logger"
	"pet-game/pkg/redis"
	"pet-game/pkg/websocket"

	"go.uber.org/zap"
)

// ExperienceSink 成就经验奖励的去向（注入宠物服务，避免环形依赖）
type ExperienceSink interface {
	GrantExperience(userID uint, amount int) error
}

// AchievementService 成就引擎
// 成就定义内置于代码目录，数据库只存每个用户的进度行
type AchievementService struct {
	repo       *repository.AchievementRepository
	userRepo   *repository.UserRepository
	notifyRepo *repository.NotificationRepository
	expSink    ExperienceSink
}

func NewAchievementService(
	repo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
	notifyRepo *repository.NotificationRepository,
) *AchievementService {
	return &AchievementService{
		repo:       repo,
		userRepo:   userRepo,
		notifyRepo: notifyRepo,
	}
}

// BindExperienceSink 注入经验奖励去向，main中在宠物服务创建后调用
func (s *AchievementService) BindExperienceSink(sink ExperienceSink) {
	s.expSink = sink
}

// loadBook 合并内置目录与用户进度行
func (s *AchievementService) loadBook(userID uint) (*game.AchievementBook, map[string]*model.UserAchievement, error) {
	rows, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*model.UserAchievement, len(rows))
	for _, row := range rows {
		byID[row.AchievementID] = row
	}

	defs := game.DefaultAchievementCatalog()
	for i := range defs {
		if row, ok := byID[defs[i].ID]; ok {
			defs[i].Requirement.Current = row.Current
			defs[i].IsComplete = row.IsComplete
			defs[i].DateCompleted = row.CompletedAt
		}
	}
	return game.NewAchievementBook(defs), byID, nil
}

// AddProgress 处理一次进度事件并持久化变更
// 新完成的成就：发放奖励（一次性）、写通知、推送 achievement_unlocked 事件
func (s *AchievementService) AddProgress(userID uint, progressType string, delta int) ([]game.Achievement, error) {
	if delta <= 0 {
		return nil, nil
	}

	book, byID, err := s.loadBook(userID)
	if err != nil {
		return nil, err
	}

	completed := book.UpdateProgress(progressType, delta)

	// 写回受影响的进度行
	var dirty []*model.UserAchievement
	for _, a := range book.Achievements() {
		if a.Requirement.Type != progressType {
			continue
		}
		row, ok := byID[a.ID]
		if !ok {
			row = &model.UserAchievement{UserID: userID, AchievementID: a.ID}
		}
		if row.Current == a.Requirement.Current && row.IsComplete == a.IsComplete {
			continue
		}
		row.Current = a.Requirement.Current
		row.IsComplete = a.IsComplete
		row.CompletedAt = a.DateCompleted
		dirty = append(dirty, row)
	}
	if err := s.repo.SaveProgress(dirty); err != nil {
		return nil, err
	}

	for _, a := range completed {
		s.grantRewards(userID, a)
		s.notifyUnlocked(userID, a)
	}
	return completed, nil
}

// grantRewards 发放完成奖励，完成是一次性的所以不会重复发放
func (s *AchievementService) grantRewards(userID uint, a game.Achievement) {
	for _, reward := range a.Rewards {
		switch reward.Type {
		case game.RewardCoins:
			if err := s.userRepo.AddCoins(userID, reward.Amount); err != nil {
				logger.Error("发放成就金币失败",
					zap.Uint("user_id", userID),
					zap.String("achievement", a.ID),
					zap.Error(err),
				)
			}
		case game.RewardExperience:
			if s.expSink != nil {
				if err := s.expSink.GrantExperience(userID, reward.Amount); err != nil {
					logger.Error("发放成就经验失败",
						zap.Uint("user_id", userID),
						zap.String("achievement", a.ID),
						zap.Error(err),
					)
				}
			}
		case game.RewardItems:
			// 物品奖励随通知下发，由客户端展示
		}
	}
}

// notifyUnlocked 写通知记录并实时推送
func (s *AchievementService) notifyUnlocked(userID uint, a game.Achievement) {
	payload, _ := json.Marshal(a)
	n := &model.Notification{
		UserID:  userID,
		Type:    model.NotifyAchievement,
		Title:   "成就达成",
		Content: fmt.Sprintf("解锁成就「%s」", a.Title),
		Payload: string(payload),
	}
	if err := s.notifyRepo.Create(n); err != nil {
		logger.Error("写成就通知失败", zap.Uint("user_id", userID), zap.Error(err))
	}
	_ = redis.IncrementNotifyCount(userID)

	websocket.SendEvent(userID, websocket.EventAchievementUnlocked, a)

	logger.Info("成就解锁",
		zap.Uint("user_id", userID),
		zap.String("achievement", a.ID),
		zap.Int("points", a.Points),
	)
}

// List 成就总览：全部成就、总点数、分类进度
func (s *AchievementService) List(userID uint) ([]game.Achievement, int, map[game.AchievementCategory]game.CategoryProgress, error) {
	book, _, err := s.loadBook(userID)
	if err != nil {
		return nil, 0, nil, err
	}

	categories := map[game.AchievementCategory]game.CategoryProgress{
		game.CategoryCare:        book.GetCategoryProgress(game.CategoryCare),
		game.CategoryTraining:    book.GetCategoryProgress(game.CategoryTraining),
		game.CategorySocial:      book.GetCategoryProgress(game.CategorySocial),
		game.CategoryExploration: book.GetCategoryProgress(game.CategoryExploration),
	}
	return book.Achievements(), book.Points(), categories, nil
}

// ListByCategory 按分类列出成就
func (s *AchievementService) ListByCategory(userID uint, category game.AchievementCategory) ([]game.Achievement, error) {
	book, _, err := s.loadBook(userID)
	if err != nil {
		return nil, err
	}
	var out []game.Achievement
	for _, a := range book.Achievements() {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

// DrainRecent 取走"最近完成"队列：返回已完成未推送的成就并标记已推送
// 一次性消费，重复调用返回空
func (s *AchievementService) DrainRecent(userID uint) ([]game.Achievement, error) {
	rows, err := s.repo.ListUnnotified(userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	defs := game.DefaultAchievementCatalog()
	defByID := make(map[string]game.Achievement, len(defs))
	for _, d := range defs {
		defByID[d.ID] = d
	}

	var out []game.Achievement
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		def, ok := defByID[row.AchievementID]
		if !ok {
			continue
		}
		def.Requirement.Current = row.Current
		def.IsComplete = true
		def.DateCompleted = row.CompletedAt
		out = append(out, def)
		ids = append(ids, row.AchievementID)
	}

	if err := s.repo.MarkNotified(userID, ids); err != nil {
		return nil, err
	}
	return out, nil
}
