package game

import "testing"

func TestMoodOf(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  Mood
	}{
		{
			name:  "饥饿优先级最高",
			stats: Stats{Hunger: 10, Happiness: 90, Energy: 10, Hygiene: 90, Health: 30},
			want:  MoodHungry,
		},
		{
			name:  "疲惫次之",
			stats: Stats{Hunger: 50, Happiness: 90, Energy: 10, Hygiene: 90, Health: 30},
			want:  MoodTired,
		},
		{
			name:  "生病第三",
			stats: Stats{Hunger: 50, Happiness: 90, Energy: 50, Hygiene: 90, Health: 30},
			want:  MoodSick,
		},
		{
			name:  "均值高则开心",
			stats: Stats{Hunger: 85, Happiness: 85, Energy: 85, Hygiene: 85, Health: 85},
			want:  MoodHappy,
		},
		{
			name:  "均值恰好80开心",
			stats: Stats{Hunger: 80, Happiness: 80, Energy: 80, Hygiene: 80, Health: 80},
			want:  MoodHappy,
		},
		{
			name:  "均值中等平静",
			stats: Stats{Hunger: 60, Happiness: 60, Energy: 60, Hygiene: 60, Health: 60},
			want:  MoodNeutral,
		},
		{
			name:  "均值低则难过",
			stats: Stats{Hunger: 40, Happiness: 30, Energy: 40, Hygiene: 45, Health: 60},
			want:  MoodSad,
		},
		{
			name:  "饥饿阈值边界20不算饥饿",
			stats: Stats{Hunger: 20, Happiness: 60, Energy: 60, Hygiene: 60, Health: 60},
			want:  MoodNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodOf(tt.stats); got != tt.want {
				t.Errorf("MoodOf(%+v) = %v, want %v", tt.stats, got, tt.want)
			}
		})
	}
}
