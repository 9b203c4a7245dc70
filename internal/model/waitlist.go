package model

// WaitlistEntry 候补名单条目，独立于用户体系
type WaitlistEntry struct {
	Base
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
}

// TableName 指定表名
func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}
