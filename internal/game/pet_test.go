package game

import (
	"testing"
	"time"
)

func TestNewPetState(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")

	if p.Name != "小白" {
		t.Errorf("Name = %q, want 小白", p.Name)
	}
	if p.Level != 1 || p.Experience != 0 {
		t.Errorf("初始等级经验 = %d/%d, want 1/0", p.Level, p.Experience)
	}
	if p.Stats != NewFullStats() {
		t.Errorf("初始属性 = %+v, want 全满", p.Stats)
	}
	if p.Activity != ActivityIdle {
		t.Errorf("初始状态 = %v, want idle", p.Activity)
	}
}

func TestFeed(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Stats.Hunger = 50
	p.Stats.Energy = 50

	p.Feed()
	if p.Stats.Hunger != 80 {
		t.Errorf("喂食后饱食度 = %v, want 80", p.Stats.Hunger)
	}
	if p.Stats.Energy != 60 {
		t.Errorf("喂食后精力 = %v, want 60", p.Stats.Energy)
	}
	if _, ok := p.LastCare["feed"]; !ok {
		t.Error("喂食后未记录照料时间")
	}
}

func TestFeedWhenFull(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Stats.Energy = 40

	p.Feed()
	// 吃饱时不改变属性，但仍记录照料
	if p.Stats.Hunger != 100 || p.Stats.Energy != 40 {
		t.Errorf("吃饱后喂食不应改变属性: %+v", p.Stats)
	}
	if _, ok := p.LastCare["feed"]; !ok {
		t.Error("吃饱时喂食也应记录照料时间")
	}
}

func TestPlay(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Stats.Happiness = 50
	p.Stats.Energy = 60
	p.Stats.Hunger = 60

	if !p.Play() {
		t.Fatal("精力充足时玩耍应当成功")
	}
	if p.Stats.Happiness != 70 || p.Stats.Energy != 45 || p.Stats.Hunger != 50 {
		t.Errorf("玩耍后属性 = %+v", p.Stats)
	}
}

func TestPlayInsufficientEnergy(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Stats.Energy = 10
	before := p.Stats

	if p.Play() {
		t.Fatal("精力不足时玩耍应当失败")
	}
	if p.Stats != before {
		t.Errorf("失败的玩耍不应改变属性: %+v", p.Stats)
	}
}

func TestSleepCleanPet(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Stats = Stats{Hunger: 50, Happiness: 50, Energy: 30, Hygiene: 40, Health: 100}

	p.Sleep()
	if p.Stats.Energy != 80 {
		t.Errorf("睡觉后精力 = %v, want 80", p.Stats.Energy)
	}

	p.Clean()
	if p.Stats.Hygiene != 100 {
		t.Errorf("清洁后清洁度 = %v, want 100", p.Stats.Hygiene)
	}
	if p.Stats.Happiness != 60 {
		t.Errorf("清洁后心情 = %v, want 60", p.Stats.Happiness)
	}

	p.Pet()
	if p.Stats.Happiness != 65 {
		t.Errorf("抚摸后心情 = %v, want 65", p.Stats.Happiness)
	}
}

func TestGainExperience(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		exp       int
		gain      int
		wantLevel int
		wantExp   int
		wantUp    bool
	}{
		{name: "不足升级", level: 1, exp: 0, gain: 50, wantLevel: 1, wantExp: 50, wantUp: false},
		{name: "恰好升级", level: 1, exp: 90, gain: 10, wantLevel: 2, wantExp: 0, wantUp: true},
		{name: "升级保留余量", level: 1, exp: 80, gain: 50, wantLevel: 2, wantExp: 30, wantUp: true},
		{name: "连续升两级", level: 1, exp: 0, gain: 320, wantLevel: 3, wantExp: 20, wantUp: true},
		{name: "高等级门槛更高", level: 3, exp: 250, gain: 40, wantLevel: 3, wantExp: 290, wantUp: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useFakeClock(t)
			p := NewPetState("小白")
			p.Level = tt.level
			p.Experience = tt.exp

			up := p.GainExperience(tt.gain)
			if up != tt.wantUp || p.Level != tt.wantLevel || p.Experience != tt.wantExp {
				t.Errorf("GainExperience(%d) = up %v lv %d exp %d, want up %v lv %d exp %d",
					tt.gain, up, p.Level, p.Experience, tt.wantUp, tt.wantLevel, tt.wantExp)
			}
		})
	}
}

func TestGainExperienceLevelDelta(t *testing.T) {
	// 成就奖励可能一次发放大量经验，等级类进度按实际级差累计而不是固定加一
	useFakeClock(t)
	p := NewPetState("小白")
	before := p.Level

	if !p.GainExperience(320) {
		t.Fatal("大额经验应触发升级")
	}
	if delta := p.Level - before; delta != 2 {
		t.Fatalf("级差 = %d, want 2", delta)
	}
}

func TestApplyDecayAnchor(t *testing.T) {
	clk := useFakeClock(t)
	p := NewPetState("小白")
	rates := DefaultDecayRates()

	clk.Advance(10 * time.Minute)
	p.ApplyDecay(rates)
	if p.Stats.Hunger != 95 {
		t.Errorf("十分钟后饱食度 = %v, want 95", p.Stats.Hunger)
	}

	// 锚点已更新，立刻再次调用不应重复衰减
	p.ApplyDecay(rates)
	if p.Stats.Hunger != 95 {
		t.Errorf("重复调用后饱食度 = %v, want 95", p.Stats.Hunger)
	}

	clk.Advance(10 * time.Minute)
	p.ApplyDecay(rates)
	if p.Stats.Hunger != 90 {
		t.Errorf("再过十分钟饱食度 = %v, want 90", p.Stats.Hunger)
	}
}

func TestApplyDecayZeroAnchor(t *testing.T) {
	clk := useFakeClock(t)
	p := NewPetState("小白")
	p.LastDecay = time.Time{}

	p.ApplyDecay(DefaultDecayRates())
	// 零锚点仅初始化，不回溯衰减
	if p.Stats != NewFullStats() {
		t.Errorf("零锚点不应产生衰减: %+v", p.Stats)
	}
	if !p.LastDecay.Equal(clk.now) {
		t.Error("零锚点应被初始化为当前时间")
	}
}

func TestAgeDays(t *testing.T) {
	clk := useFakeClock(t)
	p := NewPetState("小白")

	if got := p.AgeDays(); got != 0 {
		t.Errorf("出生当天年龄 = %d, want 0", got)
	}
	clk.Advance(72 * time.Hour)
	if got := p.AgeDays(); got != 3 {
		t.Errorf("三天后年龄 = %d, want 3", got)
	}
}
