package model

// ArticleLike 文章点赞模型，点赞关系的唯一事实来源
type ArticleLike struct {
	Base
	UserID    uint `gorm:"type:int(11);not null;uniqueIndex:idx_like_user_article" json:"user_id"`
	ArticleID uint `gorm:"type:int(11);not null;uniqueIndex:idx_like_user_article;index" json:"article_id"`

	// 关联
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

// TableName 指定表名
func (ArticleLike) TableName() string {
	return "article_likes"
}

// Bookmark 收藏模型
type Bookmark struct {
	Base
	UserID    uint `gorm:"type:int(11);not null;uniqueIndex:idx_bookmark_user_article" json:"user_id"`
	ArticleID uint `gorm:"type:int(11);not null;uniqueIndex:idx_bookmark_user_article;index" json:"article_id"`

	// 关联
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

// TableName 指定表名
func (Bookmark) TableName() string {
	return "bookmarks"
}

// ArticleView 文章浏览记录模型，同一用户对同一文章只计一次
type ArticleView struct {
	Base
	UserID    uint `gorm:"type:int(11);not null;uniqueIndex:idx_view_user_article" json:"user_id"`
	ArticleID uint `gorm:"type:int(11);not null;uniqueIndex:idx_view_user_article;index" json:"article_id"`
}

// TableName 指定表名
func (ArticleView) TableName() string {
	return "article_views"
}

// UserFollow 用户关注模型，(follower_id, following_id)唯一
type UserFollow struct {
	Base
	FollowerID  uint `gorm:"type:int(11);not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint `gorm:"type:int(11);not null;uniqueIndex:idx_follower_following;index" json:"following_id"`

	// 关联
	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// TableName 指定表名
func (UserFollow) TableName() string {
	return "user_follows"
}
