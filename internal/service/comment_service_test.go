package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
	"github.com/inkwave/inkwave-api/internal/testutil"
)

func createTestComment(t *testing.T, db *gorm.DB, svc *CommentService, userID, articleID uint, content string, parentID *uint, createdAt time.Time) *model.Comment {
	t.Helper()
	comment, err := svc.Create(userID, articleID, &dto.CommentCreateRequest{
		Content:  content,
		ParentID: parentID,
	})
	require.NoError(t, err)
	// 固定创建时间，保证排序断言稳定
	require.NoError(t, db.Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		UpdateColumn("created_at", createdAt).Error)
	return comment
}

func TestCommentCreateUpdatesArticleCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	author := createTestUser(t, db, "author@example.com")
	article := createTestArticle(t, db, author.ID, "Hello")

	_, err := svc.Create(author.ID, article.ID, &dto.CommentCreateRequest{Content: "first"})
	require.NoError(t, err)
	_, err = svc.Create(author.ID, article.ID, &dto.CommentCreateRequest{Content: "second"})
	require.NoError(t, err)

	var updated model.Article
	require.NoError(t, db.First(&updated, article.ID).Error)
	assert.Equal(t, 2, updated.CommentCount)
}

func TestCommentCreateUnknownArticle(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	user := createTestUser(t, db, "user@example.com")
	_, err := svc.Create(user.ID, 9999, &dto.CommentCreateRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestCommentReplyDepthLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	user := createTestUser(t, db, "user@example.com")
	article := createTestArticle(t, db, user.ID, "Hello")

	top, err := svc.Create(user.ID, article.ID, &dto.CommentCreateRequest{Content: "top"})
	require.NoError(t, err)

	reply, err := svc.Create(user.ID, article.ID, &dto.CommentCreateRequest{
		Content:  "reply",
		ParentID: &top.ID,
	})
	require.NoError(t, err)

	// 回复的回复超出最大嵌套层级
	_, err = svc.Create(user.ID, article.ID, &dto.CommentCreateRequest{
		Content:  "reply to reply",
		ParentID: &reply.ID,
	})
	assert.ErrorIs(t, err, ErrReplyTooDeep)
}

func TestCommentReplyParentChecks(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	user := createTestUser(t, db, "user@example.com")
	first := createTestArticle(t, db, user.ID, "First")
	second := createTestArticle(t, db, user.ID, "Second")

	top, err := svc.Create(user.ID, first.ID, &dto.CommentCreateRequest{Content: "top"})
	require.NoError(t, err)

	// 父评论属于另一篇文章
	_, err = svc.Create(user.ID, second.ID, &dto.CommentCreateRequest{
		Content:  "cross-article reply",
		ParentID: &top.ID,
	})
	assert.ErrorIs(t, err, ErrParentMismatch)

	// 父评论不存在
	missing := uint(9999)
	_, err = svc.Create(user.ID, first.ID, &dto.CommentCreateRequest{
		Content:  "orphan reply",
		ParentID: &missing,
	})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentListOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	user := createTestUser(t, db, "user@example.com")
	article := createTestArticle(t, db, user.ID, "Hello")

	base := time.Now().Add(-time.Hour)
	oldTop := createTestComment(t, db, svc, user.ID, article.ID, "old top", nil, base)
	newTop := createTestComment(t, db, svc, user.ID, article.ID, "new top", nil, base.Add(10*time.Minute))
	oldReply := createTestComment(t, db, svc, user.ID, article.ID, "old reply", &oldTop.ID, base.Add(20*time.Minute))
	newReply := createTestComment(t, db, svc, user.ID, article.ID, "new reply", &oldTop.ID, base.Add(30*time.Minute))

	result, err := svc.ListByArticle(article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)

	// 顶层按创建时间倒序
	require.Len(t, result.List, 2)
	assert.Equal(t, newTop.ID, result.List[0].ID)
	assert.Equal(t, oldTop.ID, result.List[1].ID)

	// 回复同样倒序挂在各自的顶层评论下
	require.Len(t, result.List[1].Replies, 2)
	assert.Equal(t, newReply.ID, result.List[1].Replies[0].ID)
	assert.Equal(t, oldReply.ID, result.List[1].Replies[1].ID)
	assert.Empty(t, result.List[0].Replies)
}

func TestCommentListUnknownArticle(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	_, err := svc.ListByArticle(9999)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestCommentLike(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommentService(db, 1)

	user := createTestUser(t, db, "user@example.com")
	article := createTestArticle(t, db, user.ID, "Hello")
	comment, err := svc.Create(user.ID, article.ID, &dto.CommentCreateRequest{Content: "nice"})
	require.NoError(t, err)

	count, err := svc.Like(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.Like(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.Like(9999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
