package model

// 文章状态
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
	ArticleStatusArchived  = "archived"
)

// Article 文章模型
type Article struct {
	Base
	Title         string `gorm:"type:varchar(255);not null" json:"title"`
	Content       string `gorm:"type:longtext;not null" json:"content"`
	Status        string `gorm:"type:varchar(20);not null;default:'published';index" json:"status"` // 状态: draft published archived
	ViewCount     int    `gorm:"type:int(11);not null;default:0" json:"view_count"`
	LikeCount     int    `gorm:"type:int(11);not null;default:0" json:"like_count"`
	BookmarkCount int    `gorm:"type:int(11);not null;default:0" json:"bookmark_count"`
	CommentCount  int    `gorm:"type:int(11);not null;default:0" json:"comment_count"`
	AuthorID      uint   `gorm:"type:int(11);not null;index" json:"author_id"`

	// 关联
	Author User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags   []Tag `gorm:"many2many:article_tags;" json:"tags,omitempty"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// Tag 标签模型
type Tag struct {
	Base
	Name string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
