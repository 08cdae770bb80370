package game

import (
	"testing"
	"time"
)

func TestApplyPassiveDecay(t *testing.T) {
	rates := DecayRates{Hunger: 0.5, Happiness: 0.3, Energy: 0.4, Hygiene: 0.2}

	tests := []struct {
		name    string
		start   Stats
		elapsed time.Duration
		want    Stats
	}{
		{
			name:    "十分钟衰减",
			start:   Stats{Hunger: 100, Happiness: 100, Energy: 100, Hygiene: 100, Health: 100},
			elapsed: 10 * time.Minute,
			want:    Stats{Hunger: 95, Happiness: 97, Energy: 96, Hygiene: 98, Health: 100},
		},
		{
			name:    "长时间离线衰减到底不为负",
			start:   Stats{Hunger: 40, Happiness: 30, Energy: 20, Hygiene: 10, Health: 100},
			elapsed: 48 * time.Hour,
			want:    Stats{Hunger: 0, Happiness: 0, Energy: 0, Hygiene: 0, Health: 100},
		},
		{
			name:    "零时长不变",
			start:   Stats{Hunger: 55, Happiness: 66, Energy: 77, Hygiene: 88, Health: 99},
			elapsed: 0,
			want:    Stats{Hunger: 55, Happiness: 66, Energy: 77, Hygiene: 88, Health: 99},
		},
		{
			name:    "负时长不变",
			start:   Stats{Hunger: 55, Happiness: 66, Energy: 77, Hygiene: 88, Health: 99},
			elapsed: -time.Minute,
			want:    Stats{Hunger: 55, Happiness: 66, Energy: 77, Hygiene: 88, Health: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPassiveDecay(tt.start, rates, tt.elapsed)
			if !statsAlmostEqual(got, tt.want) {
				t.Errorf("ApplyPassiveDecay() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// 衰减只减不增：任何属性都不会因衰减上升
func TestDecayNeverIncreases(t *testing.T) {
	rates := DefaultDecayRates()
	start := Stats{Hunger: 60, Happiness: 70, Energy: 80, Hygiene: 90, Health: 100}

	got := ApplyPassiveDecay(start, rates, 5*time.Minute)
	if got.Hunger > start.Hunger || got.Happiness > start.Happiness ||
		got.Energy > start.Energy || got.Hygiene > start.Hygiene || got.Health > start.Health {
		t.Errorf("衰减后出现属性上升: %+v -> %+v", start, got)
	}
}

// 以锚点时间计算衰减：分两次应用与一次性应用结果一致，不累积漂移
func TestDecayAnchorNoDrift(t *testing.T) {
	rates := DefaultDecayRates()
	start := Stats{Hunger: 80, Happiness: 80, Energy: 80, Hygiene: 80, Health: 100}

	oneShot := ApplyPassiveDecay(start, rates, 30*time.Minute)
	split := ApplyPassiveDecay(ApplyPassiveDecay(start, rates, 12*time.Minute), rates, 18*time.Minute)

	if !statsAlmostEqual(oneShot, split) {
		t.Errorf("分段衰减结果不一致: %+v vs %+v", oneShot, split)
	}
}

func statsAlmostEqual(a, b Stats) bool {
	const eps = 1e-9
	diff := func(x, y float64) bool {
		d := x - y
		return d > eps || d < -eps
	}
	return !diff(a.Hunger, b.Hunger) && !diff(a.Happiness, b.Happiness) &&
		!diff(a.Energy, b.Energy) && !diff(a.Hygiene, b.Hygiene) && !diff(a.Health, b.Health)
}
