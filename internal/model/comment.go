package model

// Comment 评论模型
type Comment struct {
	Base
	Content   string `gorm:"type:text;not null" json:"content"`
	ArticleID uint   `gorm:"type:int(11);not null;index:idx_article_parent" json:"article_id"`
	UserID    uint   `gorm:"type:int(11);not null;index" json:"user_id"`
	ParentID  *uint  `gorm:"type:int(11);index:idx_article_parent" json:"parent_id"`
	LikeCount int    `gorm:"type:int(11);not null;default:0" json:"like_count"`

	// 关联
	User    User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []*Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
