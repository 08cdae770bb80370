package model

import (
	"time"

	"gorm.io/gorm"
)

// Friendship 好友关系
// 接受请求时为双方各写一行（UserID -> FriendID），删除好友时双向删除

type Friendship struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_user_friend;comment:用户ID"`
	FriendID  uint           `gorm:"not null;uniqueIndex:idx_user_friend;index;comment:好友ID"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Friendship) TableName() string { return "friendship" }

// FriendRequest 好友请求
// Status: PENDING/ACCEPTED/REJECTED，接受或拒绝后不可再变更

type FriendRequest struct {
	ID         uint           `gorm:"primaryKey"`
	SenderID   uint           `gorm:"not null;index;comment:发送者ID"`
	ReceiverID uint           `gorm:"not null;index;comment:接收者ID"`
	Status     string         `gorm:"type:varchar(32);default:'PENDING';comment:请求状态"`
	Message    string         `gorm:"type:varchar(255);comment:附言"`
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FriendRequest) TableName() string { return "friend_request" }

// 好友请求状态取值
const (
	RequestPending  = "PENDING"
	RequestAccepted = "ACCEPTED"
	RequestRejected = "REJECTED"
)
