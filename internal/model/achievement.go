package model

import (
	"time"

	"gorm.io/gorm"
)

// UserAchievement 用户成就进度
// 成就定义在代码内置目录中，这里只存每个用户的进度与完成状态
// (UserID, AchievementID) 唯一；IsComplete 一旦为真不可回退
// Notified 标记完成事件是否已推送，实现"最近完成"的一次性消费

type UserAchievement struct {
	ID            uint           `gorm:"primaryKey"`
	UserID        uint           `gorm:"not null;uniqueIndex:idx_user_achievement;comment:用户ID"`
	AchievementID string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_achievement;comment:成就ID"`
	Current       int            `gorm:"not null;default:0;comment:当前进度"`
	IsComplete    bool           `gorm:"not null;default:false;comment:是否完成"`
	CompletedAt   *time.Time     `gorm:"comment:完成时间"`
	Notified      bool           `gorm:"not null;default:false;comment:完成事件是否已推送"`
	CreatedAt     time.Time      `gorm:"comment:创建时间"`
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (UserAchievement) TableName() string { return "user_achievement" }
