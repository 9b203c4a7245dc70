package model

import (
	"fmt"

	"gorm.io/gorm"
)

// 需要自动迁移的模型列表
var models = []interface{}{
	&User{},
	&Article{},
	&Tag{},
	&Comment{},
	&ArticleLike{},
	&Bookmark{},
	&ArticleView{},
	&UserFollow{},
	&ReadingHistory{},
	&WaitlistEntry{},
	&Session{},
}

// InitTables 初始化数据库表
func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("自动迁移数据库表失败: %v", err)
	}
	return nil
}
