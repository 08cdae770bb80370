package game

import (
	"testing"
	"time"
)

func TestCooldownLifecycle(t *testing.T) {
	clk := useFakeClock(t)
	table := NewCooldownTable()

	if !table.Check("feed") {
		t.Fatal("新表中的活动应当可用")
	}

	table.Start("feed", 3*time.Minute)
	if table.Check("feed") {
		t.Fatal("刚进入冷却的活动不应可用")
	}
	if got := table.Remaining("feed"); got != 180 {
		t.Errorf("Remaining = %d, want 180", got)
	}

	clk.Advance(90 * time.Second)
	if table.Check("feed") {
		t.Fatal("冷却过半仍不应可用")
	}
	if got := table.Remaining("feed"); got != 90 {
		t.Errorf("Remaining = %d, want 90", got)
	}

	clk.Advance(90 * time.Second)
	if !table.Check("feed") {
		t.Fatal("冷却结束后应当可用")
	}
	if got := table.Remaining("feed"); got != 0 {
		t.Errorf("冷却结束后 Remaining = %d, want 0", got)
	}
}

func TestCooldownRemainingCeil(t *testing.T) {
	clk := useFakeClock(t)
	table := NewCooldownTable()

	table.Start("play", 10*time.Second)
	clk.Advance(9*time.Second + 500*time.Millisecond)

	// 剩余 0.5 秒向上取整为 1
	if got := table.Remaining("play"); got != 1 {
		t.Errorf("Remaining = %d, want 1", got)
	}
}

func TestCooldownIndependentActivities(t *testing.T) {
	useFakeClock(t)
	table := NewCooldownTable()

	table.Start("walk", 2*time.Hour)
	if !table.Check("train") {
		t.Error("不同活动的冷却应当互不影响")
	}
}

func TestCooldownSnapshotRestore(t *testing.T) {
	clk := useFakeClock(t)
	table := NewCooldownTable()
	table.Start("feed", 10*time.Minute)
	table.Start("play", time.Minute)

	restored := RestoreCooldownTable(table.Snapshot())

	clk.Advance(2 * time.Minute)
	if restored.Check("feed") {
		t.Error("恢复后的 feed 冷却应仍然生效")
	}
	if !restored.Check("play") {
		t.Error("恢复后的 play 冷却应已过期")
	}
}

func TestCooldownPrune(t *testing.T) {
	clk := useFakeClock(t)
	table := NewCooldownTable()
	table.Start("feed", time.Minute)
	table.Start("walk", time.Hour)

	clk.Advance(5 * time.Minute)
	table.Prune()

	snap := table.Snapshot()
	if _, ok := snap["feed"]; ok {
		t.Error("过期条目未被清理")
	}
	if _, ok := snap["walk"]; !ok {
		t.Error("未过期条目被误删")
	}
}
