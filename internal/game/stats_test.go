package game

import (
	"testing"
	"time"
)

func TestStatsApplyClamping(t *testing.T) {
	tests := []struct {
		name  string
		start Stats
		delta StatDelta
		want  Stats
	}{
		{
			name:  "普通增减",
			start: Stats{Hunger: 50, Happiness: 50, Energy: 50, Hygiene: 50, Health: 50},
			delta: StatDelta{Hunger: 10, Energy: -20},
			want:  Stats{Hunger: 60, Happiness: 50, Energy: 30, Hygiene: 50, Health: 50},
		},
		{
			name:  "上限钳制",
			start: Stats{Hunger: 95, Happiness: 100, Energy: 90, Hygiene: 100, Health: 100},
			delta: StatDelta{Hunger: 30, Happiness: 5, Energy: 50},
			want:  Stats{Hunger: 100, Happiness: 100, Energy: 100, Hygiene: 100, Health: 100},
		},
		{
			name:  "下限钳制",
			start: Stats{Hunger: 5, Happiness: 10, Energy: 3, Hygiene: 0, Health: 50},
			delta: StatDelta{Hunger: -30, Happiness: -15, Energy: -10, Hygiene: -5},
			want:  Stats{Hunger: 0, Happiness: 0, Energy: 0, Hygiene: 0, Health: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.Apply(tt.delta)
			if s != tt.want {
				t.Errorf("Apply() = %+v, want %+v", s, tt.want)
			}
		})
	}
}

// 任意操作序列之后所有属性都必须留在 [0,100] 内
func TestStatsNeverOutOfRange(t *testing.T) {
	deltas := []StatDelta{
		{Hunger: -200, Happiness: 150},
		{Energy: 300, Hygiene: -300},
		{Health: -1000},
		{Hunger: 77.7, Happiness: -0.1, Energy: -99.9},
		{Health: 250, Hygiene: 100},
	}

	s := NewFullStats()
	for i, d := range deltas {
		s.Apply(d)
		if !s.InRange() {
			t.Fatalf("第%d步之后属性越界: %+v", i, s)
		}
	}
}

func TestStatsDecayInteractionInterleaving(t *testing.T) {
	rates := DefaultDecayRates()
	s := Stats{Hunger: 30, Happiness: 40, Energy: 50, Hygiene: 20, Health: 100}

	// 衰减和互动交错执行，每一步之后都不允许越界
	for i := 0; i < 50; i++ {
		s = ApplyPassiveDecay(s, rates, 45*time.Minute)
		if !s.InRange() {
			t.Fatalf("衰减后属性越界: %+v", s)
		}
		s.Apply(StatDelta{Hunger: 30, Energy: 10, Happiness: 5})
		if !s.InRange() {
			t.Fatalf("互动后属性越界: %+v", s)
		}
	}
}

func TestStatsAverage(t *testing.T) {
	s := Stats{Hunger: 100, Happiness: 50, Energy: 50, Hygiene: 50, Health: 50}
	if got := s.Average(); got != 60 {
		t.Errorf("Average() = %v, want 60", got)
	}
}
