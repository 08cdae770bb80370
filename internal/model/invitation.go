package model

import (
	"time"

	"gorm.io/gorm"
)

// Invitation 游戏邀请
// PublicID 对外暴露的 UUID，数据库自增 ID 不出接口
// Type: WALK/PLAY/TRAINING
// Status: PENDING/ACCEPTED/DECLINED/EXPIRED，过期在读取和响应时惰性结算

type Invitation struct {
	ID         uint           `gorm:"primaryKey"`
	PublicID   string         `gorm:"type:varchar(36);not null;uniqueIndex;comment:对外邀请ID"`
	SenderID   uint           `gorm:"not null;index;comment:发起者ID"`
	ReceiverID uint           `gorm:"not null;index;comment:接收者ID"`
	Type       string         `gorm:"type:varchar(32);not null;comment:邀请类型"`
	Status     string         `gorm:"type:varchar(32);default:'PENDING';comment:邀请状态"`
	ExpiresAt  time.Time      `gorm:"not null;comment:过期时间"`
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Invitation) TableName() string { return "invitation" }

// 邀请类型取值
const (
	InviteWalk     = "WALK"
	InvitePlay     = "PLAY"
	InviteTraining = "TRAINING"
)

// 邀请状态取值
const (
	InvitePending  = "PENDING"
	InviteAccepted = "ACCEPTED"
	InviteDeclined = "DECLINED"
	InviteExpired  = "EXPIRED"
)
