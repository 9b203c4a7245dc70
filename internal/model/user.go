package model

import (
	"time"
)

// 用户角色
const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// User 用户模型
type User struct {
	Base
	Email       string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	Avatar      string    `gorm:"type:varchar(255)" json:"avatar"`
	Role        string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status      int       `gorm:"type:tinyint(2);not null;default:1" json:"status"` // 0=禁用 1=正常
	Points      int       `gorm:"type:int(11);not null;default:0" json:"points"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
