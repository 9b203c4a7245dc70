package model

import (
	"time"

	"gorm.io/datatypes"
)

// Session 会话模型，data字段保存JSON编码的会话内容
type Session struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Data      datatypes.JSON `gorm:"not null" json:"data"`
	ExpiresAt time.Time      `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName 指定表名
func (Session) TableName() string {
	return "sessions"
}
