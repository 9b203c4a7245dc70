package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/testutil"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice Zhang",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "other456",
		FullName: "Another Alice",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	created := createTestUser(t, db, "alice@example.com")

	user, err := svc.Authenticate("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.False(t, user.LastLoginAt.IsZero())

	_, err = svc.Authenticate("alice@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordIsHashed(t *testing.T) {
	db := testutil.NewTestDB(t)

	user := createTestUser(t, db, "alice@example.com")
	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	user := createTestUser(t, db, "alice@example.com")

	updated, err := svc.UpdateProfile(user.ID, &dto.UserUpdateRequest{
		FullName: "Alice Updated",
		Avatar:   "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.FullName)
	assert.Equal(t, "https://cdn.example.com/a.png", updated.Avatar)
	// 未提供的字段保持不变
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestFollowAndUnfollow(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	require.NoError(t, svc.Follow(alice.ID, bob.ID))

	following, err := svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// 重复关注为幂等空操作，不产生第二条记录
	require.NoError(t, svc.Follow(alice.ID, bob.ID))

	followers, err := svc.GetFollowers(bob.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers.Total)
	require.Len(t, followers.List, 1)
	assert.Equal(t, alice.ID, followers.List[0].ID)

	require.NoError(t, svc.Unfollow(alice.ID, bob.ID))
	following, err = svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// 未关注时取消关注同样为空操作
	require.NoError(t, svc.Unfollow(alice.ID, bob.ID))
}

func TestFollowSelfRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	alice := createTestUser(t, db, "alice@example.com")
	assert.ErrorIs(t, svc.Follow(alice.ID, alice.ID), ErrSelfFollow)
}

func TestFollowUnknownUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	alice := createTestUser(t, db, "alice@example.com")
	assert.ErrorIs(t, svc.Follow(alice.ID, 9999), ErrUserNotFound)
}

func TestGetProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewUserService(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	carol := createTestUser(t, db, "carol@example.com")

	require.NoError(t, svc.Follow(bob.ID, alice.ID))
	require.NoError(t, svc.Follow(carol.ID, alice.ID))
	require.NoError(t, svc.Follow(alice.ID, bob.ID))
	createTestArticle(t, db, alice.ID, "Hello")

	profile, err := svc.GetProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.FollowerCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.Equal(t, int64(1), profile.ArticleCount)

	_, err = svc.GetProfile(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
