package game

import "time"

// Rewards 活动完成后的奖励
type Rewards struct {
	Happiness  float64 `json:"happiness"`
	Experience int     `json:"experience"`
	Coins      int     `json:"coins"`
}

// Activity 活动目录条目（静态、不可变）
// ID 在目录内唯一，同时作为冷却表的键
type Activity struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	EnergyCost  float64       `json:"energy_cost"`
	Cooldown    time.Duration `json:"cooldown"`
	Rewards     Rewards       `json:"rewards"`
}

// 活动目录
var activityCatalog = []Activity{
	{
		ID:          "feed",
		Name:        "喂食",
		Description: "给宠物一份美味的食物",
		EnergyCost:  5,
		Cooldown:    180 * time.Minute,
		Rewards:     Rewards{Happiness: 15, Experience: 5, Coins: 2},
	},
	{
		ID:          "play",
		Name:        "玩耍",
		Description: "和宠物玩有趣的小游戏",
		EnergyCost:  15,
		Cooldown:    30 * time.Minute,
		Rewards:     Rewards{Happiness: 25, Experience: 10, Coins: 5},
	},
	{
		ID:          "walk",
		Name:        "散步",
		Description: "带宠物出门散步",
		EnergyCost:  20,
		Cooldown:    120 * time.Minute,
		Rewards:     Rewards{Happiness: 30, Experience: 15, Coins: 8},
	},
	{
		ID:          "groom",
		Name:        "梳洗",
		Description: "保持宠物干净健康",
		EnergyCost:  10,
		Cooldown:    240 * time.Minute,
		Rewards:     Rewards{Happiness: 20, Experience: 8, Coins: 4},
	},
	{
		ID:          "train",
		Name:        "训练",
		Description: "教宠物新技能",
		EnergyCost:  25,
		Cooldown:    360 * time.Minute,
		Rewards:     Rewards{Happiness: 15, Experience: 20, Coins: 10},
	},
	{
		ID:          "pet",
		Name:        "抚摸",
		Description: "表达对宠物的关爱",
		EnergyCost:  5,
		Cooldown:    15 * time.Minute,
		Rewards:     Rewards{Happiness: 10, Experience: 3, Coins: 1},
	},
}

// Activities 返回完整活动目录（副本，调用方不能修改目录）
func Activities() []Activity {
	out := make([]Activity, len(activityCatalog))
	copy(out, activityCatalog)
	return out
}

// GetActivity 按ID查找活动
func GetActivity(id string) (Activity, bool) {
	for _, a := range activityCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// ActivityCooldown 查询活动的冷却时长，未知ID返回0
func ActivityCooldown(id string) time.Duration {
	if a, ok := GetActivity(id); ok {
		return a.Cooldown
	}
	return 0
}
