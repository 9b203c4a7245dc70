package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/logger"
	"github.com/inkwave/inkwave-api/internal/model"
)

// ErrEmailTaken 邮箱已被占用（注册或候补名单重复）
var ErrEmailTaken = errors.New("email already registered")

const waitlistCountKey = "waitlist:count"

// WaitlistService 候补名单服务
type WaitlistService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewWaitlistService 创建候补名单服务，rdb可为nil（缓存降级）
func NewWaitlistService(db *gorm.DB, rdb *redis.Client) *WaitlistService {
	return &WaitlistService{db: db, rdb: rdb}
}

// Join 加入候补名单，邮箱重复时返回ErrEmailTaken
func (s *WaitlistService) Join(fullName, email string) (*model.WaitlistEntry, error) {
	entry := &model.WaitlistEntry{
		FullName: fullName,
		Email:    email,
	}
	if err := s.db.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("加入候补名单失败: %w", err)
	}

	s.invalidateCount()
	return entry, nil
}

// Count 候补名单人数，优先走Redis缓存
func (s *WaitlistService) Count() (int64, error) {
	if s.rdb != nil {
		ctx := context.Background()
		if val, err := s.rdb.Get(ctx, waitlistCountKey).Result(); err == nil {
			if n, perr := strconv.ParseInt(val, 10, 64); perr == nil {
				return n, nil
			}
		}
	}

	var count int64
	if err := s.db.Model(&model.WaitlistEntry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计候补名单失败: %w", err)
	}

	if s.rdb != nil {
		ctx := context.Background()
		if err := s.rdb.Set(ctx, waitlistCountKey, count, 30*time.Second).Err(); err != nil {
			logger.Warn("候补名单计数缓存写入失败", zap.Error(err))
		}
	}
	return count, nil
}

func (s *WaitlistService) invalidateCount() {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.Background(), waitlistCountKey).Err(); err != nil {
		logger.Warn("候补名单计数缓存失效失败", zap.Error(err))
	}
}
