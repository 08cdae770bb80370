package game

// 宠物属性值的取值范围
const (
	MinStat = 0.0
	MaxStat = 100.0
)

// Stats 宠物核心属性
// 所有属性始终保持在 [0,100]，每次变更后立即钳制，调用方不会观察到越界值
type Stats struct {
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
	Hygiene   float64 `json:"hygiene"`
	Health    float64 `json:"health"`
}

// StatDelta 一次属性变更量，正负皆可
type StatDelta struct {
	Hunger    float64
	Happiness float64
	Energy    float64
	Hygiene   float64
	Health    float64
}

// NewFullStats 返回全满属性（新宠物初始状态）
func NewFullStats() Stats {
	return Stats{
		Hunger:    MaxStat,
		Happiness: MaxStat,
		Energy:    MaxStat,
		Hygiene:   MaxStat,
		Health:    MaxStat,
	}
}

// clampStat 将单项属性钳制到 [0,100]
func clampStat(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Apply 应用一次变更量并钳制每项属性
func (s *Stats) Apply(d StatDelta) {
	s.Hunger = clampStat(s.Hunger + d.Hunger)
	s.Happiness = clampStat(s.Happiness + d.Happiness)
	s.Energy = clampStat(s.Energy + d.Energy)
	s.Hygiene = clampStat(s.Hygiene + d.Hygiene)
	s.Health = clampStat(s.Health + d.Health)
}

// Clamp 将所有属性钳制回合法区间（用于快照恢复后的防御性修正）
func (s *Stats) Clamp() {
	s.Hunger = clampStat(s.Hunger)
	s.Happiness = clampStat(s.Happiness)
	s.Energy = clampStat(s.Energy)
	s.Hygiene = clampStat(s.Hygiene)
	s.Health = clampStat(s.Health)
}

// Average 五项属性均值，用于心情判定
func (s Stats) Average() float64 {
	return (s.Hunger + s.Happiness + s.Energy + s.Hygiene + s.Health) / 5
}

// InRange 检查所有属性是否都在合法区间内
func (s Stats) InRange() bool {
	for _, v := range []float64{s.Hunger, s.Happiness, s.Energy, s.Hygiene, s.Health} {
		if v < MinStat || v > MaxStat {
			return false
		}
	}
	return true
}
