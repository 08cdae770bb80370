package game

import (
	"errors"
	"testing"
	"time"
)

func TestApplyInteraction(t *testing.T) {
	clk := useFakeClock(t)
	p := NewPetState("小白")
	p.Stats.Happiness = 50
	cooldowns := NewCooldownTable()

	res, err := ApplyInteraction(p, cooldowns, "feed")
	if err != nil {
		t.Fatalf("ApplyInteraction: %v", err)
	}
	if res.Experience != 5 || res.Coins != 2 {
		t.Errorf("喂食奖励 = %d exp %d coins, want 5/2", res.Experience, res.Coins)
	}
	if p.Stats.Happiness != 65 {
		t.Errorf("喂食后心情 = %v, want 65", p.Stats.Happiness)
	}
	if p.Stats.Energy != 95 {
		t.Errorf("喂食后精力 = %v, want 95", p.Stats.Energy)
	}
	if want := clk.now.Add(3 * time.Hour); !res.CooldownUntil.Equal(want) {
		t.Errorf("冷却截止 = %v, want %v", res.CooldownUntil, want)
	}
	if cooldowns.Check("feed") {
		t.Error("互动成功后应进入冷却")
	}
}

func TestApplyInteractionUnknownActivity(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")

	_, err := ApplyInteraction(p, NewCooldownTable(), "fly")
	if !errors.Is(err, ErrUnknownActivity) {
		t.Errorf("err = %v, want ErrUnknownActivity", err)
	}
}

// 精力不足时拒绝互动，且属性与冷却均不发生变化
func TestApplyInteractionInsufficientEnergy(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Stats.Energy = 10
	before := *p
	cooldowns := NewCooldownTable()

	_, err := ApplyInteraction(p, cooldowns, "play")
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
	}
	if p.Stats != before.Stats || p.Level != before.Level || p.Experience != before.Experience {
		t.Errorf("失败的互动不应改变宠物状态: %+v", p)
	}
	if !cooldowns.Check("play") {
		t.Error("失败的互动不应触发冷却")
	}
}

func TestApplyInteractionOnCooldown(t *testing.T) {
	clk := useFakeClock(t)
	p := NewPetState("小白")
	cooldowns := NewCooldownTable()

	if _, err := ApplyInteraction(p, cooldowns, "pet"); err != nil {
		t.Fatalf("首次互动失败: %v", err)
	}
	before := p.Stats

	_, err := ApplyInteraction(p, cooldowns, "pet")
	if !errors.Is(err, ErrOnCooldown) {
		t.Fatalf("err = %v, want ErrOnCooldown", err)
	}
	if p.Stats != before {
		t.Errorf("冷却中的互动不应改变属性: %+v", p.Stats)
	}

	clk.Advance(15 * time.Minute)
	if _, err := ApplyInteraction(p, cooldowns, "pet"); err != nil {
		t.Errorf("冷却结束后互动应成功: %v", err)
	}
}

func TestApplyInteractionLevelUp(t *testing.T) {
	useFakeClock(t)
	p := NewPetState("小白")
	p.Experience = 95
	cooldowns := NewCooldownTable()

	res, err := ApplyInteraction(p, cooldowns, "play")
	if err != nil {
		t.Fatalf("ApplyInteraction: %v", err)
	}
	if !res.LeveledUp || res.Level != 2 {
		t.Errorf("升级结果 = up %v lv %d, want up true lv 2", res.LeveledUp, res.Level)
	}
	if p.Experience != 5 {
		t.Errorf("升级后经验 = %d, want 5", p.Experience)
	}
}

func TestActivityCatalog(t *testing.T) {
	acts := Activities()
	if len(acts) != 6 {
		t.Fatalf("活动数量 = %d, want 6", len(acts))
	}
	seen := map[string]bool{}
	for _, a := range acts {
		if seen[a.ID] {
			t.Errorf("活动 ID 重复: %s", a.ID)
		}
		seen[a.ID] = true
	}
	for _, id := range []string{"feed", "play", "walk", "groom", "train", "pet"} {
		if !seen[id] {
			t.Errorf("缺少活动: %s", id)
		}
	}

	walk, ok := GetActivity("walk")
	if !ok {
		t.Fatal("GetActivity(walk) 未找到")
	}
	if walk.EnergyCost != 20 || walk.Cooldown != 2*time.Hour {
		t.Errorf("walk 定义 = %+v", walk)
	}
	if walk.Rewards.Happiness != 30 || walk.Rewards.Experience != 15 || walk.Rewards.Coins != 8 {
		t.Errorf("walk 奖励 = %+v", walk.Rewards)
	}
}
