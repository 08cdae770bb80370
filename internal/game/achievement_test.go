package game

import "testing"

func testAchievementDefs() []Achievement {
	return []Achievement{
		{
			ID:          "first-meal",
			Title:       "第一餐",
			Category:    CategoryCare,
			Rarity:      RarityCommon,
			Points:      10,
			Requirement: Requirement{Type: ProgressFeedCount, Value: 1},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 50}},
		},
		{
			ID:          "gourmet",
			Title:       "美食家",
			Category:    CategoryCare,
			Rarity:      RarityRare,
			Points:      25,
			Requirement: Requirement{Type: ProgressFeedCount, Value: 5},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 200}},
		},
		{
			ID:          "social",
			Title:       "初识好友",
			Category:    CategorySocial,
			Rarity:      RarityCommon,
			Points:      15,
			Requirement: Requirement{Type: ProgressFriendCount, Value: 1},
		},
	}
}

func TestUpdateProgressCompletion(t *testing.T) {
	useFakeClock(t)
	book := NewAchievementBook(testAchievementDefs())

	done := book.UpdateProgress(ProgressFeedCount, 1)
	if len(done) != 1 || done[0].ID != "first-meal" {
		t.Fatalf("首次喂食应完成 first-meal, got %v", done)
	}
	if !done[0].IsComplete || done[0].DateCompleted == nil {
		t.Error("完成的成就缺少完成标记或时间")
	}
	if book.Points() != 10 {
		t.Errorf("Points = %d, want 10", book.Points())
	}

	done = book.UpdateProgress(ProgressFeedCount, 3)
	if len(done) != 0 {
		t.Errorf("进度未达标不应有新完成: %v", done)
	}

	done = book.UpdateProgress(ProgressFeedCount, 1)
	if len(done) != 1 || done[0].ID != "gourmet" {
		t.Fatalf("第五次喂食应完成 gourmet, got %v", done)
	}
	if book.Points() != 35 {
		t.Errorf("Points = %d, want 35", book.Points())
	}
}

// 成就完成是一次性的：再多进度也不会重复完成或重复计分
func TestUpdateProgressNoDoubleComplete(t *testing.T) {
	useFakeClock(t)
	book := NewAchievementBook(testAchievementDefs())

	book.UpdateProgress(ProgressFeedCount, 10)
	if book.Points() != 35 {
		t.Fatalf("Points = %d, want 35", book.Points())
	}

	done := book.UpdateProgress(ProgressFeedCount, 10)
	if len(done) != 0 {
		t.Errorf("已完成的成就不应再次完成: %v", done)
	}
	if book.Points() != 35 {
		t.Errorf("重复进度后 Points = %d, want 35", book.Points())
	}
}

// 进度单调不减：零或负增量被忽略
func TestUpdateProgressMonotonic(t *testing.T) {
	useFakeClock(t)
	book := NewAchievementBook(testAchievementDefs())

	book.UpdateProgress(ProgressFeedCount, 3)
	if got := progressCurrent(t, book, "gourmet"); got != 3 {
		t.Fatalf("gourmet 进度 = %d, want 3", got)
	}

	book.UpdateProgress(ProgressFeedCount, 0)
	book.UpdateProgress(ProgressFeedCount, -5)
	if got := progressCurrent(t, book, "gourmet"); got != 3 {
		t.Errorf("非正增量后 gourmet 进度 = %d, want 3", got)
	}
}

func TestUpdateProgressIndependentTypes(t *testing.T) {
	useFakeClock(t)
	book := NewAchievementBook(testAchievementDefs())

	done := book.UpdateProgress(ProgressFriendCount, 1)
	if len(done) != 1 || done[0].ID != "social" {
		t.Fatalf("加好友应完成 social, got %v", done)
	}
	if got := progressCurrent(t, book, "first-meal"); got != 0 {
		t.Errorf("喂食进度不应受好友进度影响: %d", got)
	}
}

func progressCurrent(t *testing.T, book *AchievementBook, id string) int {
	t.Helper()
	for _, a := range book.Achievements() {
		if a.ID == id {
			return a.Requirement.Current
		}
	}
	t.Fatalf("未找到成就 %s", id)
	return 0
}

func TestDrainRecent(t *testing.T) {
	useFakeClock(t)
	book := NewAchievementBook(testAchievementDefs())

	book.UpdateProgress(ProgressFeedCount, 1)
	book.UpdateProgress(ProgressFriendCount, 1)

	recent := book.DrainRecent()
	if len(recent) != 2 {
		t.Fatalf("DrainRecent = %d 条, want 2", len(recent))
	}
	// 取走即清空
	if again := book.DrainRecent(); len(again) != 0 {
		t.Errorf("重复取应为空: %v", again)
	}
}

func TestGetCategoryProgress(t *testing.T) {
	useFakeClock(t)
	book := NewAchievementBook(testAchievementDefs())
	book.UpdateProgress(ProgressFeedCount, 1)

	care := book.GetCategoryProgress(CategoryCare)
	if care.Completed != 1 || care.Total != 2 || care.Percentage != 50 {
		t.Errorf("照料类进度 = %+v", care)
	}

	social := book.GetCategoryProgress(CategorySocial)
	if social.Completed != 0 || social.Total != 1 || social.Percentage != 0 {
		t.Errorf("社交类进度 = %+v", social)
	}
}

func TestNewAchievementBookPreloaded(t *testing.T) {
	useFakeClock(t)
	defs := testAchievementDefs()
	now := TimeNow()
	defs[0].IsComplete = true
	defs[0].DateCompleted = &now
	defs[0].Requirement.Current = 1

	book := NewAchievementBook(defs)
	if book.Points() != 10 {
		t.Errorf("已完成成就应计入总分: %d", book.Points())
	}
	done := book.UpdateProgress(ProgressFeedCount, 10)
	for _, a := range done {
		if a.ID == "first-meal" {
			t.Error("预加载的已完成成就不应再次完成")
		}
	}
}

func TestDefaultAchievementCatalog(t *testing.T) {
	defs := DefaultAchievementCatalog()
	if len(defs) == 0 {
		t.Fatal("默认成就目录为空")
	}
	seen := map[string]bool{}
	for _, a := range defs {
		if a.ID == "" || a.Title == "" {
			t.Errorf("成就缺少 ID 或标题: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("成就 ID 重复: %s", a.ID)
		}
		seen[a.ID] = true
		if a.Requirement.Value <= 0 {
			t.Errorf("成就 %s 的目标值非法: %d", a.ID, a.Requirement.Value)
		}
		if a.IsComplete || a.DateCompleted != nil {
			t.Errorf("种子成就不应带完成状态: %s", a.ID)
		}
	}
}
