package response

import (
	"pet-game/internal/game"
	"pet-game/internal/model"
)

// PetInfo 宠物状态响应
// Stats 为结算过离线衰减后的值，Cooldowns 为各活动剩余冷却秒数
type PetInfo struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Level      int            `json:"level"`
	Experience int            `json:"experience"`
	NextLevel  int            `json:"next_level_exp"`
	AgeDays    int            `json:"age_days"`
	Stats      game.Stats     `json:"stats"`
	Mood       game.Mood      `json:"mood"`
	Activity   string         `json:"activity"`
	Cooldowns  map[string]int `json:"cooldowns"`
}

// FilterPetInfo 过滤宠物信息
func FilterPetInfo(pet *model.Pet, state *game.PetState, cooldowns map[string]int) *PetInfo {
	if pet == nil || state == nil {
		return nil
	}
	return &PetInfo{
		ID:         pet.ID,
		Name:       state.Name,
		Type:       pet.Type,
		Level:      state.Level,
		Experience: state.Experience,
		NextLevel:  state.Level * game.ExpPerLevel,
		AgeDays:    state.AgeDays(),
		Stats:      state.Stats,
		Mood:       state.Mood(),
		Activity:   string(state.Activity),
		Cooldowns:  cooldowns,
	}
}

// InteractionInfo 互动结果响应
type InteractionInfo struct {
	Activity        string             `json:"activity"`
	Stats           game.Stats         `json:"stats"`
	Mood            game.Mood          `json:"mood"`
	ExperienceGain  int                `json:"experience_gain"`
	CoinsGain       int                `json:"coins_gain"`
	LeveledUp       bool               `json:"leveled_up"`
	Level           int                `json:"level"`
	CooldownSeconds int                `json:"cooldown_seconds"`
	NewAchievements []game.Achievement `json:"new_achievements,omitempty"`
}

// ActivityInfo 活动目录条目
type ActivityInfo struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	EnergyCost       float64      `json:"energy_cost"`
	CooldownSeconds  int          `json:"cooldown_seconds"`
	Rewards          game.Rewards `json:"rewards"`
	RemainingSeconds int          `json:"remaining_seconds"`
}

// FilterActivityInfo 过滤活动信息，remaining 为该宠物当前剩余冷却
func FilterActivityInfo(act game.Activity, remaining int) *ActivityInfo {
	return &ActivityInfo{
		ID:               act.ID,
		Name:             act.Name,
		Description:      act.Description,
		EnergyCost:       act.EnergyCost,
		CooldownSeconds:  int(act.Cooldown.Seconds()),
		Rewards:          act.Rewards,
		RemainingSeconds: remaining,
	}
}

// AchievementListInfo 成就总览响应
type AchievementListInfo struct {
	Achievements []game.Achievement                                 `json:"achievements"`
	Points       int                                                `json:"points"`
	Categories   map[game.AchievementCategory]game.CategoryProgress `json:"categories"`
}
