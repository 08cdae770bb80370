package service

import (
	"encoding/json"
	"time"

	"pet-game/config"
	"pet-game/internal/game"
	"pet-game/internal/model"
	"pet-game/internal/repository"
	"pet-game/pkg/logger"
	"pet-game/pkg/redis"
	"pet-game/pkg/websocket"

	"go.uber.org/zap"
)

// PetService 宠物服务
// 属性衰减采用惰性结算：每次读取或操作前按 LastDecayAt 锚点补算，
// 没有后台扫描任务
type PetService struct {
	petRepo  *repository.PetRepository
	userRepo *repository.UserRepository
	achSvc   *AchievementService
	presence *PresenceService
	cfg      config.GameConfig
}

func NewPetService(
	petRepo *repository.PetRepository,
	userRepo *repository.UserRepository,
	achSvc *AchievementService,
	presence *PresenceService,
	cfg config.GameConfig,
) *PetService {
	return &PetService{
		petRepo:  petRepo,
		userRepo: userRepo,
		achSvc:   achSvc,
		presence: presence,
		cfg:      cfg,
	}
}

// decayRates 配置的每分钟衰减速率
func (s *PetService) decayRates() game.DecayRates {
	return game.DecayRates{
		Hunger:    s.cfg.HungerDecayPerMin,
		Happiness: s.cfg.HappinessDecayPerMin,
		Energy:    s.cfg.EnergyDecayPerMin,
		Hygiene:   s.cfg.HygieneDecayPerMin,
	}
}

// loadState 从存储行还原宠物运行时状态
func loadState(pet *model.Pet) *game.PetState {
	state := &game.PetState{
		Name:       pet.Name,
		Birthday:   pet.Birthday,
		Level:      pet.Level,
		Experience: pet.Experience,
		Stats: game.Stats{
			Hunger:    pet.Hunger,
			Happiness: pet.Happiness,
			Energy:    pet.Energy,
			Hygiene:   pet.Hygiene,
			Health:    pet.Health,
		},
		Activity:  game.PetActivityState(pet.Activity),
		LastCare:  map[string]time.Time{},
		LastDecay: pet.LastDecayAt,
	}
	if pet.CareTimes != "" {
		_ = json.Unmarshal([]byte(pet.CareTimes), &state.LastCare)
	}
	return state
}

// storeState 将运行时状态写回存储行
func storeState(pet *model.Pet, state *game.PetState) {
	pet.Level = state.Level
	pet.Experience = state.Experience
	pet.Hunger = state.Stats.Hunger
	pet.Happiness = state.Stats.Happiness
	pet.Energy = state.Stats.Energy
	pet.Hygiene = state.Stats.Hygiene
	pet.Health = state.Stats.Health
	pet.Activity = string(state.Activity)
	pet.LastDecayAt = state.LastDecay
	if data, err := json.Marshal(state.LastCare); err == nil {
		pet.CareTimes = string(data)
	}
}

// CreatePet 为用户创建宠物，每个用户至多一只
func (s *PetService) CreatePet(userID uint, name, petType string) (*model.Pet, *game.PetState, error) {
	if _, err := s.petRepo.GetByUserID(userID); err == nil {
		return nil, nil, ErrPetExists
	}

	state := game.NewPetState(name)
	pet := &model.Pet{
		UserID:   userID,
		Name:     name,
		Type:     petType,
		Birthday: state.Birthday,
	}
	storeState(pet, state)
	if err := s.petRepo.Create(pet); err != nil {
		return nil, nil, err
	}

	// 等级成就以等级为进度值，新宠物从1级起步
	if _, err := s.achSvc.AddProgress(userID, game.ProgressPetLevel, 1); err != nil {
		logger.Warn("初始化等级成就进度失败", zap.Uint("user_id", userID), zap.Error(err))
	}

	logger.Info("宠物已创建",
		zap.Uint("user_id", userID),
		zap.String("name", name),
		zap.String("type", petType),
	)
	return pet, state, nil
}

// GetPet 获取宠物当前状态（结算离线衰减后）
// 返回宠物行、运行时状态和各活动剩余冷却秒数
func (s *PetService) GetPet(userID uint) (*model.Pet, *game.PetState, map[string]int, error) {
	pet, err := s.petRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, nil, ErrPetNotFound
	}

	state := loadState(pet)
	state.ApplyDecay(s.decayRates())
	storeState(pet, state)
	if err := s.petRepo.Save(pet); err != nil {
		return nil, nil, nil, err
	}

	cooldowns, err := s.cooldownMap(pet.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	s.cacheSnapshot(userID, pet, state)
	return pet, state, cooldowns, nil
}

// cooldownMap 宠物各活动剩余冷却秒数
func (s *PetService) cooldownMap(petID uint) (map[string]int, error) {
	_ = s.petRepo.PruneCooldowns(petID)
	rows, err := s.petRepo.GetCooldowns(petID)
	if err != nil {
		return nil, err
	}
	table := s.restoreCooldowns(rows)

	out := make(map[string]int)
	for _, act := range game.Activities() {
		if remaining := table.Remaining(act.ID); remaining > 0 {
			out[act.ID] = remaining
		}
	}
	return out, nil
}

// restoreCooldowns 从数据库行恢复冷却表
func (s *PetService) restoreCooldowns(rows []*model.PetCooldown) *game.CooldownTable {
	snapshot := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		snapshot[row.ActivityID] = row.ExpiresAt
	}
	return game.RestoreCooldownTable(snapshot)
}

// Interact 执行一次活动互动
// 前置校验（活动存在、精力、冷却）全部通过才落任何变更
func (s *PetService) Interact(userID uint, username, activityID string) (*game.InteractionResult, []game.Achievement, *game.PetState, error) {
	pet, err := s.petRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, nil, ErrPetNotFound
	}

	state := loadState(pet)
	state.ApplyDecay(s.decayRates())

	rows, err := s.petRepo.GetCooldowns(pet.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	table := s.restoreCooldowns(rows)

	oldLevel := state.Level
	result, err := game.ApplyInteraction(state, table, activityID)
	if err != nil {
		// 失败也要把已结算的衰减写回
		storeState(pet, state)
		_ = s.petRepo.Save(pet)
		return nil, nil, nil, err
	}

	storeState(pet, state)
	if err := s.petRepo.Save(pet); err != nil {
		return nil, nil, nil, err
	}
	if err := s.petRepo.UpsertCooldown(pet.ID, activityID, result.CooldownUntil); err != nil {
		return nil, nil, nil, err
	}
	if result.Coins > 0 {
		if err := s.userRepo.AddCoins(userID, result.Coins); err != nil {
			logger.Error("互动金币入账失败", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	// 成就进度：单项活动计数 + 总互动计数（+ 升级时的等级进度）
	var unlocked []game.Achievement
	if progressType := game.ProgressTypeForActivity(activityID); progressType != "" {
		if done, err := s.achSvc.AddProgress(userID, progressType, 1); err == nil {
			unlocked = append(unlocked, done...)
		}
	}
	if done, err := s.achSvc.AddProgress(userID, game.ProgressActivityCount, 1); err == nil {
		unlocked = append(unlocked, done...)
	}
	if result.LeveledUp {
		if done, err := s.achSvc.AddProgress(userID, game.ProgressPetLevel, result.Level-oldLevel); err == nil {
			unlocked = append(unlocked, done...)
		}
	}

	// 互动期间对好友显示 playing，延迟后自动回退
	s.presence.SetPlaying(userID, username)

	s.invalidateAndPush(userID, state)

	logger.Info("宠物互动完成",
		zap.Uint("user_id", userID),
		zap.String("activity", activityID),
		zap.Int("exp", result.Experience),
		zap.Int("coins", result.Coins),
		zap.Bool("leveled_up", result.LeveledUp),
	)
	return &result, unlocked, state, nil
}

// Care 执行照料动作：feed/play/sleep/clean/pet
func (s *PetService) Care(userID uint, action string) (*game.PetState, []game.Achievement, error) {
	pet, err := s.petRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, ErrPetNotFound
	}

	state := loadState(pet)
	state.ApplyDecay(s.decayRates())

	switch action {
	case "feed":
		state.Feed()
	case "play":
		if !state.Play() {
			storeState(pet, state)
			_ = s.petRepo.Save(pet)
			return nil, nil, game.ErrInsufficientEnergy
		}
	case "sleep":
		state.Sleep()
	case "clean":
		state.Clean()
	case "pet":
		state.Pet()
	default:
		return nil, nil, ErrInvalidAction
	}

	storeState(pet, state)
	if err := s.petRepo.Save(pet); err != nil {
		return nil, nil, err
	}

	// 成就进度：总照料计数 + 对应单项计数
	var unlocked []game.Achievement
	if done, err := s.achSvc.AddProgress(userID, game.ProgressCareCount, 1); err == nil {
		unlocked = append(unlocked, done...)
	}
	if progressType := game.ProgressTypeForActivity(action); progressType != "" {
		if done, err := s.achSvc.AddProgress(userID, progressType, 1); err == nil {
			unlocked = append(unlocked, done...)
		}
	}

	s.invalidateAndPush(userID, state)
	return state, unlocked, nil
}

// GrantExperience 直接发放经验（成就奖励入口）
func (s *PetService) GrantExperience(userID uint, amount int) error {
	pet, err := s.petRepo.GetByUserID(userID)
	if err != nil {
		return ErrPetNotFound
	}

	state := loadState(pet)
	oldLevel := state.Level
	leveledUp := state.GainExperience(amount)
	storeState(pet, state)
	if err := s.petRepo.Save(pet); err != nil {
		return err
	}

	if leveledUp {
		// 一次发放可能连升多级，按实际级差计进度
		if _, err := s.achSvc.AddProgress(userID, game.ProgressPetLevel, state.Level-oldLevel); err != nil {
			logger.Warn("等级成就进度更新失败", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
	s.invalidateAndPush(userID, state)
	return nil
}

// invalidateAndPush 失效快照缓存并推送最新状态，下一次读取时重建缓存
func (s *PetService) invalidateAndPush(userID uint, state *game.PetState) {
	_ = redis.InvalidatePetSnapshot(userID)

	websocket.SendEvent(userID, websocket.EventPetStats, map[string]interface{}{
		"stats":      state.Stats,
		"mood":       state.Mood(),
		"level":      state.Level,
		"experience": state.Experience,
	})
}

// cacheSnapshot 写宠物快照缓存
func (s *PetService) cacheSnapshot(userID uint, pet *model.Pet, state *game.PetState) {
	_ = redis.CachePetSnapshot(userID, &redis.CachedPet{
		PetID:      pet.ID,
		UserID:     userID,
		Name:       state.Name,
		Type:       pet.Type,
		Level:      state.Level,
		Experience: state.Experience,
		Hunger:     state.Stats.Hunger,
		Happiness:  state.Stats.Happiness,
		Energy:     state.Stats.Energy,
		Hygiene:    state.Stats.Hygiene,
		Health:     state.Stats.Health,
		Mood:       string(state.Mood()),
		CachedAt:   time.Now(),
	})
}
