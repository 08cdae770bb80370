package game

import (
	"errors"
	"time"
)

// 互动前置条件失败属于预期内结果，同步返回给调用方，绝不panic
var (
	ErrUnknownActivity    = errors.New("unknown activity")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrOnCooldown         = errors.New("activity on cooldown")
)

// InteractionResult 一次成功互动的结算结果
type InteractionResult struct {
	Activity      Activity  `json:"activity"`
	Stats         Stats     `json:"stats"`
	Experience    int       `json:"experience"`
	Coins         int       `json:"coins"`
	LeveledUp     bool      `json:"leveled_up"`
	Level         int       `json:"level"`
	CooldownUntil time.Time `json:"cooldown_until"`
}

// ApplyInteraction 执行一次活动互动
// 前置条件：精力 ≥ 活动消耗 且 该活动不在冷却中；任一不满足时不做任何变更，
// 返回对应的哨兵错误。成功时扣精力、应用奖励增量（逐项钳制）、发放经验金币并启动冷却
func ApplyInteraction(p *PetState, cooldowns *CooldownTable, activityID string) (InteractionResult, error) {
	act, ok := GetActivity(activityID)
	if !ok {
		return InteractionResult{}, ErrUnknownActivity
	}

	// 先检查所有前置条件，确认可行之前不触碰任何状态
	if p.Stats.Energy < act.EnergyCost {
		return InteractionResult{}, ErrInsufficientEnergy
	}
	if !cooldowns.Check(act.ID) {
		return InteractionResult{}, ErrOnCooldown
	}

	p.Stats.Apply(StatDelta{
		Energy:    -act.EnergyCost,
		Happiness: act.Rewards.Happiness,
	})
	leveledUp := p.GainExperience(act.Rewards.Experience)
	cooldowns.Start(act.ID, act.Cooldown)
	p.markCare(act.ID)

	expiry, _ := cooldowns.Expiry(act.ID)
	return InteractionResult{
		Activity:      act,
		Stats:         p.Stats,
		Experience:    act.Rewards.Experience,
		Coins:         act.Rewards.Coins,
		LeveledUp:     leveledUp,
		Level:         p.Level,
		CooldownUntil: expiry,
	}, nil
}
