package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
)

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	svc := NewUserService(db)
	user, err := svc.Register(&dto.RegisterRequest{
		Email:    email,
		Password: "secret123",
		FullName: "Test User",
	})
	require.NoError(t, err)
	return user
}

func createTestArticle(t *testing.T, db *gorm.DB, authorID uint, title string) *model.Article {
	t.Helper()
	svc := NewArticleService(db)
	article, err := svc.Create(authorID, &dto.ArticleCreateRequest{
		Title:   title,
		Content: "content of " + title,
	})
	require.NoError(t, err)
	return article
}
