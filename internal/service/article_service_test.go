package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
	"github.com/inkwave/inkwave-api/internal/testutil"
)

func TestArticleCreateWithTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	author := createTestUser(t, db, "author@example.com")
	article, err := svc.Create(author.ID, &dto.ArticleCreateRequest{
		Title:   "Go并发模式",
		Content: "正文",
		Tags:    []string{"go", "concurrency"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ArticleStatusPublished, article.Status)
	assert.Equal(t, author.ID, article.AuthorID)
	assert.Len(t, article.Tags, 2)

	// 同名标签复用，不重复创建
	_, err = svc.Create(author.ID, &dto.ArticleCreateRequest{
		Title:   "再谈Go",
		Content: "正文",
		Tags:    []string{"go"},
	})
	require.NoError(t, err)

	var tagCount int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)
}

func TestArticleGetByIDNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	_, err := svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleDetailIncludesAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	author := createTestUser(t, db, "author@example.com")
	created := createTestArticle(t, db, author.ID, "Hello")

	article, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, article.Author.ID)
	assert.Equal(t, author.FullName, article.Author.FullName)
}

func TestArticleListOnlyPublished(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	author := createTestUser(t, db, "author@example.com")
	published := createTestArticle(t, db, author.ID, "Published")
	_, err := svc.Create(author.ID, &dto.ArticleCreateRequest{
		Title:   "Draft",
		Content: "正文",
		Status:  model.ArticleStatusDraft,
	})
	require.NoError(t, err)

	result, err := svc.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.List, 1)
	assert.Equal(t, published.ID, result.List[0].ID)
}

func TestArticleListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	author := createTestUser(t, db, "author@example.com")
	first := createTestArticle(t, db, author.ID, "First")
	require.NoError(t, db.Model(&model.Article{}).
		Where("id = ?", first.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)
	second := createTestArticle(t, db, author.ID, "Second")

	result, err := svc.List(1, 10)
	require.NoError(t, err)
	require.Len(t, result.List, 2)
	assert.Equal(t, second.ID, result.List[0].ID)
	assert.Equal(t, first.ID, result.List[1].ID)
}

func TestArticleUpdateOwnerOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	author := createTestUser(t, db, "author@example.com")
	other := createTestUser(t, db, "other@example.com")
	article := createTestArticle(t, db, author.ID, "Original")

	_, err := svc.Update(other.ID, article.ID, &dto.ArticleUpdateRequest{Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotArticleOwner)

	updated, err := svc.Update(author.ID, article.ID, &dto.ArticleUpdateRequest{
		Title:  "Updated",
		Status: model.ArticleStatusArchived,
		Tags:   []string{"news"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, model.ArticleStatusArchived, updated.Status)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "news", updated.Tags[0].Name)

	_, err = svc.Update(author.ID, 9999, &dto.ArticleUpdateRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestGetUserArticlesIncludesDrafts(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewArticleService(db)

	author := createTestUser(t, db, "author@example.com")
	createTestArticle(t, db, author.ID, "Published")
	_, err := svc.Create(author.ID, &dto.ArticleCreateRequest{
		Title:   "Draft",
		Content: "正文",
		Status:  model.ArticleStatusDraft,
	})
	require.NoError(t, err)

	result, err := svc.GetUserArticles(author.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.List, 2)
}
