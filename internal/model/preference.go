package model

import (
	"time"

	"gorm.io/gorm"
)

// UserPreference 用户偏好设置
// 每个用户一行，注册时以默认值创建

type UserPreference struct {
	ID             uint           `gorm:"primaryKey"`
	UserID         uint           `gorm:"not null;uniqueIndex;comment:用户ID"`
	SoundEnabled   bool           `gorm:"not null;default:true;comment:是否开启音效"`
	NotifyFriend   bool           `gorm:"not null;default:true;comment:是否接收好友通知"`
	NotifyInvite   bool           `gorm:"not null;default:true;comment:是否接收邀请通知"`
	ShowOnlineOnly bool           `gorm:"not null;default:false;comment:好友列表仅显示在线"`
	Theme          string         `gorm:"type:varchar(32);default:'light';comment:界面主题"`
	CreatedAt      time.Time      `gorm:"comment:创建时间"`
	UpdatedAt      time.Time      `gorm:"comment:更新时间"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (UserPreference) TableName() string { return "user_preference" }
