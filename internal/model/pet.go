package model

import (
	"time"

	"gorm.io/gorm"
)

// Pet 宠物模型
// 每个用户至多一只宠物（UserID 唯一索引）
// 五项属性以 0-100 浮点存储，读取时按 LastDecayAt 锚点补算离线衰减
// CareTimes 以 JSON 记录各照料动作的最近时间

type Pet struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      uint           `gorm:"not null;uniqueIndex;comment:主人ID"`
	Name        string         `gorm:"type:varchar(64);not null;comment:宠物名"`
	Type        string         `gorm:"type:varchar(32);default:'cat';comment:宠物种类"`
	Birthday    time.Time      `gorm:"comment:出生时间"`
	Level       int            `gorm:"not null;default:1;comment:等级"`
	Experience  int            `gorm:"not null;default:0;comment:当前等级内经验"`
	Hunger      float64        `gorm:"not null;default:100;comment:饱食度"`
	Happiness   float64        `gorm:"not null;default:100;comment:心情值"`
	Energy      float64        `gorm:"not null;default:100;comment:精力值"`
	Hygiene     float64        `gorm:"not null;default:100;comment:清洁度"`
	Health      float64        `gorm:"not null;default:100;comment:健康值"`
	Activity    string         `gorm:"type:varchar(32);default:'idle';comment:当前活动状态"`
	CareTimes   string         `gorm:"type:text;comment:各照料动作最近时间(JSON)"`
	LastDecayAt time.Time      `gorm:"comment:上次衰减结算时间"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Pet) TableName() string { return "pet" }

// PetCooldown 宠物活动冷却
// (PetID, ActivityID) 唯一，过期行惰性清理

type PetCooldown struct {
	ID         uint      `gorm:"primaryKey"`
	PetID      uint      `gorm:"not null;uniqueIndex:idx_pet_activity;comment:宠物ID"`
	ActivityID string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_pet_activity;comment:活动ID"`
	ExpiresAt  time.Time `gorm:"not null;comment:冷却截止时间"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

func (PetCooldown) TableName() string { return "pet_cooldown" }
