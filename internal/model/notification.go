package model

import (
	"time"

	"gorm.io/gorm"
)

// Notification 站内通知
// Type: friend_request/friend_accepted/game_invite/achievement_unlocked/system
// Payload 存放事件附加数据(JSON)，未读计数另由 Redis 维护

type Notification struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index;comment:接收者ID"`
	Type      string         `gorm:"type:varchar(32);not null;comment:通知类型"`
	Title     string         `gorm:"type:varchar(128);comment:标题"`
	Content   string         `gorm:"type:varchar(255);comment:内容"`
	Payload   string         `gorm:"type:text;comment:附加数据(JSON)"`
	IsRead    bool           `gorm:"not null;default:false;comment:是否已读"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Notification) TableName() string { return "notification" }

// 通知类型取值
const (
	NotifyFriendRequest  = "friend_request"
	NotifyFriendAccepted = "friend_accepted"
	NotifyGameInvite     = "game_invite"
	NotifyAchievement    = "achievement_unlocked"
	NotifySystem         = "system"
)
