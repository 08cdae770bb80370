package game

import (
	"time"
)

// PetActivityState 宠物当前行为状态
type PetActivityState string

const (
	ActivityIdle     PetActivityState = "idle"
	ActivityPlaying  PetActivityState = "playing"
	ActivitySleeping PetActivityState = "sleeping"
	ActivityEating   PetActivityState = "eating"
	ActivityWalking  PetActivityState = "walking"
)

// 照顾动作的固定数值
const (
	feedHungerGain     = 30.0
	feedEnergyGain     = 10.0
	playHappinessGain  = 20.0
	playEnergyCost     = 15.0
	playHungerCost     = 10.0
	playMinEnergy      = 20.0
	sleepEnergyGain    = 50.0
	cleanHappinessGain = 10.0
	petHappinessGain   = 5.0
)

// 每级所需经验 = 等级 * ExpPerLevel
const ExpPerLevel = 100

// PetState 单个会话内的宠物状态容器
// 显式构造、依赖注入，不做包级单例；宿主负责加载/保存快照
type PetState struct {
	Name       string
	Birthday   time.Time
	Level      int
	Experience int
	Stats      Stats
	Activity   PetActivityState
	LastCare   map[string]time.Time
	LastDecay  time.Time
}

// NewPetState 创建一只新宠物：全满属性、1级0经验
func NewPetState(name string) *PetState {
	now := TimeNow()
	return &PetState{
		Name:      name,
		Birthday:  now,
		Level:     1,
		Experience: 0,
		Stats:     NewFullStats(),
		Activity:  ActivityIdle,
		LastCare:  make(map[string]time.Time),
		LastDecay: now,
	}
}

// AgeDays 派生年龄（天）
func (p *PetState) AgeDays() int {
	return int(TimeNow().Sub(p.Birthday).Hours() / 24)
}

// Mood 派生心情，读取时计算
func (p *PetState) Mood() Mood {
	return MoodOf(p.Stats)
}

// markCare 记录照顾时间
func (p *PetState) markCare(action string) {
	if p.LastCare == nil {
		p.LastCare = make(map[string]time.Time)
	}
	p.LastCare[action] = TimeNow()
}

// Feed 喂食：饥饿度和精力上升；已吃饱时不再进食但仍记录时间
func (p *PetState) Feed() {
	if p.Stats.Hunger < MaxStat {
		p.Stats.Apply(StatDelta{Hunger: feedHungerGain, Energy: feedEnergyGain})
	}
	p.Activity = ActivityEating
	p.markCare("feed")
}

// Play 玩耍：快乐度上升，消耗精力和饥饿度；太累时拒绝
func (p *PetState) Play() bool {
	if p.Stats.Energy < playMinEnergy {
		return false
	}
	p.Stats.Apply(StatDelta{
		Happiness: playHappinessGain,
		Energy:    -playEnergyCost,
		Hunger:    -playHungerCost,
	})
	p.Activity = ActivityPlaying
	p.markCare("play")
	return true
}

// Sleep 睡觉：恢复精力
func (p *PetState) Sleep() {
	p.Stats.Apply(StatDelta{Energy: sleepEnergyGain})
	p.Activity = ActivitySleeping
	p.markCare("sleep")
}

// Clean 清洁：清洁度直接回满，快乐度小幅上升
func (p *PetState) Clean() {
	p.Stats.Hygiene = MaxStat
	p.Stats.Apply(StatDelta{Happiness: cleanHappinessGain})
	p.markCare("clean")
}

// Pet 抚摸：快乐度小幅上升
func (p *PetState) Pet() {
	p.Stats.Apply(StatDelta{Happiness: petHappinessGain})
	p.markCare("pet")
}

// UpdateStats 应用一次任意属性变更（钳制后生效）
func (p *PetState) UpdateStats(d StatDelta) {
	p.Stats.Apply(d)
}

// GainExperience 增加经验，满足 level*100 时升级并结转余量
// 一次大额经验可能连升多级
func (p *PetState) GainExperience(amount int) (leveledUp bool) {
	if amount <= 0 {
		return false
	}
	p.Experience += amount
	for p.Experience >= p.Level*ExpPerLevel {
		p.Experience -= p.Level * ExpPerLevel
		p.Level++
		leveledUp = true
	}
	return leveledUp
}

// ApplyDecay 以上次衰减时间为锚点应用被动衰减
// 纯粹按经过时间计算，不累积相对增量，避免定时器漂移
func (p *PetState) ApplyDecay(rates DecayRates) {
	now := TimeNow()
	if p.LastDecay.IsZero() {
		p.LastDecay = now
		return
	}
	elapsed := now.Sub(p.LastDecay)
	if elapsed <= 0 {
		return
	}
	p.Stats = ApplyPassiveDecay(p.Stats, rates, elapsed)
	p.LastDecay = now
}
