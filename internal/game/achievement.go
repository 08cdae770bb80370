package game

import "time"

// AchievementCategory 成就分类
type AchievementCategory string

const (
	CategoryCare        AchievementCategory = "care"
	CategoryTraining    AchievementCategory = "training"
	CategorySocial      AchievementCategory = "social"
	CategoryExploration AchievementCategory = "exploration"
)

// AchievementRarity 成就稀有度
type AchievementRarity string

const (
	RarityCommon    AchievementRarity = "common"
	RarityRare      AchievementRarity = "rare"
	RarityEpic      AchievementRarity = "epic"
	RarityLegendary AchievementRarity = "legendary"
)

// RewardType 成就奖励类型
type RewardType string

const (
	RewardCoins      RewardType = "coins"
	RewardItems      RewardType = "items"
	RewardExperience RewardType = "experience"
)

// Requirement 成就完成条件：current 累计到 value 即完成
type Requirement struct {
	Type    string `json:"type"`
	Value   int    `json:"value"`
	Current int    `json:"current"`
}

// AchievementReward 完成时一次性发放的奖励
type AchievementReward struct {
	Type   RewardType `json:"type"`
	Amount int        `json:"amount"`
	ItemID string     `json:"item_id,omitempty"`
}

// Achievement 成就：静态定义 + 可变进度
// isComplete 一旦为真就不可逆，后续进度事件不再影响它
type Achievement struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      AchievementCategory `json:"category"`
	Rarity        AchievementRarity   `json:"rarity"`
	Points        int                 `json:"points"`
	Requirement   Requirement         `json:"requirement"`
	Rewards       []AchievementReward `json:"rewards,omitempty"`
	IsComplete    bool                `json:"is_complete"`
	DateCompleted *time.Time          `json:"date_completed,omitempty"`
}

// CategoryProgress 按分类统计的完成情况，纯派生，无独立计数器
type CategoryProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// AchievementBook 单个会话的成就引擎
// 持有成就集合、累计点数和一次性消费的"最近完成"队列
type AchievementBook struct {
	achievements []Achievement
	recent       []Achievement
	points       int
}

// NewAchievementBook 用给定定义集构造引擎
// 传入已有进度（快照恢复）时直接接受其中的完成状态和点数需另行恢复
func NewAchievementBook(defs []Achievement) *AchievementBook {
	book := &AchievementBook{
		achievements: make([]Achievement, len(defs)),
	}
	copy(book.achievements, defs)
	for _, a := range book.achievements {
		if a.IsComplete {
			book.points += a.Points
		}
	}
	return book
}

// Achievements 返回全部成就（副本）
func (b *AchievementBook) Achievements() []Achievement {
	out := make([]Achievement, len(b.achievements))
	copy(out, b.achievements)
	return out
}

// Points 当前累计成就点数
func (b *AchievementBook) Points() int {
	return b.points
}

// UpdateProgress 处理一次进度事件 (type, delta)
// 对每个匹配且未完成的成就累加进度；达标的在同一逻辑步内全部标记完成，
// 记录完成时间、累加点数并进入最近完成队列。对已完成成就重跑是空操作，
// 奖励不会被二次发放。返回本次新完成的成就
func (b *AchievementBook) UpdateProgress(reqType string, delta int) []Achievement {
	if delta <= 0 {
		return nil
	}

	var completed []Achievement
	for i := range b.achievements {
		a := &b.achievements[i]
		if a.Requirement.Type != reqType || a.IsComplete {
			continue
		}
		a.Requirement.Current += delta
		if a.Requirement.Current >= a.Requirement.Value {
			now := TimeNow()
			a.IsComplete = true
			a.DateCompleted = &now
			b.points += a.Points
			b.recent = append(b.recent, *a)
			completed = append(completed, *a)
		}
	}
	return completed
}

// DrainRecent 取走最近完成队列（一次性消费后清空）
func (b *AchievementBook) DrainRecent() []Achievement {
	out := b.recent
	b.recent = nil
	return out
}

// ClearRecent 直接丢弃最近完成队列
func (b *AchievementBook) ClearRecent() {
	b.recent = nil
}

// Progress 按条件类型列出成就及完成百分比
func (b *AchievementBook) Progress(reqType string) []Achievement {
	var out []Achievement
	for _, a := range b.achievements {
		if a.Requirement.Type == reqType {
			out = append(out, a)
		}
	}
	return out
}

// GetCategoryProgress 统计某分类的完成情况
func (b *AchievementBook) GetCategoryProgress(category AchievementCategory) CategoryProgress {
	var p CategoryProgress
	for _, a := range b.achievements {
		if a.Category != category {
			continue
		}
		p.Total++
		if a.IsComplete {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}
