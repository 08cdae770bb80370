package game

import "time"

// DecayRates 每分钟被动衰减速率
// 数值来源于产品配置，可调；衰减只减不增
type DecayRates struct {
	Hunger    float64
	Happiness float64
	Energy    float64
	Hygiene   float64
}

// DefaultDecayRates 默认衰减速率
func DefaultDecayRates() DecayRates {
	return DecayRates{
		Hunger:    0.5,
		Happiness: 0.3,
		Energy:    0.4,
		Hygiene:   0.2,
	}
}

// ApplyPassiveDecay 纯函数：把经过的真实时间换算成属性衰减
// 结果逐项钳制到 ≥0；elapsed ≤ 0 时原样返回
// 健康值不参与被动衰减
func ApplyPassiveDecay(s Stats, rates DecayRates, elapsed time.Duration) Stats {
	if elapsed <= 0 {
		return s
	}
	minutes := elapsed.Minutes()

	s.Hunger = clampStat(s.Hunger - rates.Hunger*minutes)
	s.Happiness = clampStat(s.Happiness - rates.Happiness*minutes)
	s.Energy = clampStat(s.Energy - rates.Energy*minutes)
	s.Hygiene = clampStat(s.Hygiene - rates.Hygiene*minutes)
	return s
}
