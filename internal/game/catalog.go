package game

// 进度事件类型
// 宠物服务和好友服务在对应动作完成后上报这些事件
const (
	ProgressFeedCount     = "feed_count"
	ProgressPlayCount     = "play_count"
	ProgressWalkCount     = "walk_count"
	ProgressTrainCount    = "train_count"
	ProgressGroomCount    = "groom_count"
	ProgressCareCount     = "care_count"
	ProgressActivityCount = "activity_count"
	ProgressFriendCount   = "friend_count"
	ProgressPetLevel      = "pet_level"
	ProgressLoginCount    = "login_count"
)

// DefaultAchievementCatalog 成就定义目录
// 定义是静态种子数据；进度和完成状态按用户持久化
func DefaultAchievementCatalog() []Achievement {
	return []Achievement{
		{
			ID:          "first-meal",
			Title:       "第一餐",
			Description: "第一次给宠物喂食",
			Category:    CategoryCare,
			Rarity:      RarityCommon,
			Points:      10,
			Requirement: Requirement{Type: ProgressFeedCount, Value: 1},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 5}},
		},
		{
			ID:          "gourmet-chef",
			Title:       "美食家",
			Description: "累计喂食50次",
			Category:    CategoryCare,
			Rarity:      RarityRare,
			Points:      30,
			Requirement: Requirement{Type: ProgressFeedCount, Value: 50},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 50}},
		},
		{
			ID:          "caretaker",
			Title:       "贴心管家",
			Description: "完成100次照顾动作",
			Category:    CategoryCare,
			Rarity:      RarityEpic,
			Points:      60,
			Requirement: Requirement{Type: ProgressCareCount, Value: 100},
			Rewards: []AchievementReward{
				{Type: RewardCoins, Amount: 100},
				{Type: RewardExperience, Amount: 50},
			},
		},
		{
			ID:          "squeaky-clean",
			Title:       "一尘不染",
			Description: "梳洗宠物20次",
			Category:    CategoryCare,
			Rarity:      RarityCommon,
			Points:      15,
			Requirement: Requirement{Type: ProgressGroomCount, Value: 20},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 20}},
		},
		{
			ID:          "first-trick",
			Title:       "初学乍练",
			Description: "第一次训练宠物",
			Category:    CategoryTraining,
			Rarity:      RarityCommon,
			Points:      10,
			Requirement: Requirement{Type: ProgressTrainCount, Value: 1},
			Rewards:     []AchievementReward{{Type: RewardExperience, Amount: 10}},
		},
		{
			ID:          "drill-master",
			Title:       "训练大师",
			Description: "累计训练30次",
			Category:    CategoryTraining,
			Rarity:      RarityEpic,
			Points:      60,
			Requirement: Requirement{Type: ProgressTrainCount, Value: 30},
			Rewards: []AchievementReward{
				{Type: RewardCoins, Amount: 80},
				{Type: RewardExperience, Amount: 100},
			},
		},
		{
			ID:          "level-five",
			Title:       "小有所成",
			Description: "宠物达到5级",
			Category:    CategoryTraining,
			Rarity:      RarityRare,
			Points:      40,
			Requirement: Requirement{Type: ProgressPetLevel, Value: 5},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 60}},
		},
		{
			ID:          "level-ten",
			Title:       "登峰造极",
			Description: "宠物达到10级",
			Category:    CategoryTraining,
			Rarity:      RarityLegendary,
			Points:      100,
			Requirement: Requirement{Type: ProgressPetLevel, Value: 10},
			Rewards: []AchievementReward{
				{Type: RewardCoins, Amount: 200},
				{Type: RewardItems, Amount: 1, ItemID: "golden-collar"},
			},
		},
		{
			ID:          "first-friend",
			Title:       "初识好友",
			Description: "添加第一位好友",
			Category:    CategorySocial,
			Rarity:      RarityCommon,
			Points:      10,
			Requirement: Requirement{Type: ProgressFriendCount, Value: 1},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 10}},
		},
		{
			ID:          "social-butterfly",
			Title:       "社交达人",
			Description: "好友数量达到10人",
			Category:    CategorySocial,
			Rarity:      RarityEpic,
			Points:      60,
			Requirement: Requirement{Type: ProgressFriendCount, Value: 10},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 100}},
		},
		{
			ID:          "first-steps",
			Title:       "迈出第一步",
			Description: "第一次带宠物散步",
			Category:    CategoryExploration,
			Rarity:      RarityCommon,
			Points:      10,
			Requirement: Requirement{Type: ProgressWalkCount, Value: 1},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 5}},
		},
		{
			ID:          "trailblazer",
			Title:       "探路先锋",
			Description: "累计散步40次",
			Category:    CategoryExploration,
			Rarity:      RarityEpic,
			Points:      60,
			Requirement: Requirement{Type: ProgressWalkCount, Value: 40},
			Rewards: []AchievementReward{
				{Type: RewardCoins, Amount: 120},
				{Type: RewardExperience, Amount: 60},
			},
		},
		{
			ID:          "busy-week",
			Title:       "勤奋一周",
			Description: "完成50次活动",
			Category:    CategoryExploration,
			Rarity:      RarityRare,
			Points:      30,
			Requirement: Requirement{Type: ProgressActivityCount, Value: 50},
			Rewards:     []AchievementReward{{Type: RewardCoins, Amount: 40}},
		},
		{
			ID:          "daily-devotion",
			Title:       "日久情深",
			Description: "累计登录30天",
			Category:    CategoryCare,
			Rarity:      RarityLegendary,
			Points:      100,
			Requirement: Requirement{Type: ProgressLoginCount, Value: 30},
			Rewards: []AchievementReward{
				{Type: RewardCoins, Amount: 300},
				{Type: RewardItems, Amount: 1, ItemID: "memory-album"},
			},
		},
	}
}

// ProgressTypeForActivity 活动独立计数的事件类型，没有对应计数时返回空
func ProgressTypeForActivity(activityID string) string {
	switch activityID {
	case "feed":
		return ProgressFeedCount
	case "play":
		return ProgressPlayCount
	case "walk":
		return ProgressWalkCount
	case "train":
		return ProgressTrainCount
	case "groom":
		return ProgressGroomCount
	default:
		return ""
	}
}
