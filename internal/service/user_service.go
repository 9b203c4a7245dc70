package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/dto"
	"github.com/inkwave/inkwave-api/internal/model"
)

var (
	// ErrInvalidCredentials 邮箱或密码不正确
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfFollow 不允许关注自己
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// UserService 用户服务
type UserService struct {
	db *gorm.DB
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register 注册新用户，邮箱重复时返回ErrEmailTaken
func (s *UserService) Register(req *dto.RegisterRequest) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     model.RoleUser,
		Status:   1,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return user, nil
}

// Authenticate 校验邮箱密码，成功时更新最后登录时间
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&user).UpdateColumn("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("更新登录时间失败: %w", err)
	}
	user.LastLoginAt = now
	return &user, nil
}

// GetByID 按ID查询用户
func (s *UserService) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// UpdateProfile 更新当前用户的资料字段，空字段不更新
func (s *UserService) UpdateProfile(userID uint, req *dto.UserUpdateRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	if len(updates) > 0 {
		if err := s.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("更新用户资料失败: %w", err)
		}
	}
	return s.GetByID(userID)
}

// Follow 关注用户，重复关注为幂等空操作
func (s *UserService) Follow(followerID, followingID uint) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	if _, err := s.GetByID(followingID); err != nil {
		return err
	}

	follow := &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := s.db.Create(follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("关注用户失败: %w", err)
	}
	return nil
}

// Unfollow 取消关注，未关注时为幂等空操作
func (s *UserService) Unfollow(followerID, followingID uint) error {
	err := s.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.UserFollow{}).Error
	if err != nil {
		return fmt.Errorf("取消关注失败: %w", err)
	}
	return nil
}

// IsFollowing 是否已关注
func (s *UserService) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("查询关注关系失败: %w", err)
	}
	return count > 0, nil
}

// GetFollowers 分页查询粉丝列表，按关注时间倒序
func (s *UserService) GetFollowers(userID uint, page, size int) (*dto.FollowListResponse, error) {
	var total int64
	if err := s.db.Model(&model.UserFollow{}).Where("following_id = ?", userID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计粉丝失败: %w", err)
	}

	var follows []model.UserFollow
	err := s.db.Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&follows).Error
	if err != nil {
		return nil, fmt.Errorf("查询粉丝列表失败: %w", err)
	}

	list := make([]dto.UserBriefInfo, 0, len(follows))
	for i := range follows {
		list = append(list, dto.NewUserBriefInfo(&follows[i].Follower))
	}
	return &dto.FollowListResponse{Total: total, List: list}, nil
}

// GetFollowing 分页查询关注列表，按关注时间倒序
func (s *UserService) GetFollowing(userID uint, page, size int) (*dto.FollowListResponse, error) {
	var total int64
	if err := s.db.Model(&model.UserFollow{}).Where("follower_id = ?", userID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计关注失败: %w", err)
	}

	var follows []model.UserFollow
	err := s.db.Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&follows).Error
	if err != nil {
		return nil, fmt.Errorf("查询关注列表失败: %w", err)
	}

	list := make([]dto.UserBriefInfo, 0, len(follows))
	for i := range follows {
		list = append(list, dto.NewUserBriefInfo(&follows[i].Following))
	}
	return &dto.FollowListResponse{Total: total, List: list}, nil
}

// GetProfile 用户公开资料及统计
func (s *UserService) GetProfile(userID uint) (*dto.UserProfileResponse, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var (
		followerCount  int64
		followingCount int64
		articleCount   int64
	)
	var g errgroup.Group
	g.Go(func() error {
		return s.db.Model(&model.UserFollow{}).Where("following_id = ?", userID).Count(&followerCount).Error
	})
	g.Go(func() error {
		return s.db.Model(&model.UserFollow{}).Where("follower_id = ?", userID).Count(&followingCount).Error
	})
	g.Go(func() error {
		return s.db.Model(&model.Article{}).
			Where("author_id = ? AND status = ?", userID, model.ArticleStatusPublished).
			Count(&articleCount).Error
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("统计用户数据失败: %w", err)
	}

	return &dto.UserProfileResponse{
		ID:             user.ID,
		FullName:       user.FullName,
		Avatar:         user.Avatar,
		Role:           user.Role,
		Points:         user.Points,
		CreatedAt:      user.CreatedAt,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		ArticleCount:   articleCount,
	}, nil
}
