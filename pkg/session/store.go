package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inkwave/inkwave-api/internal/config"
	"github.com/inkwave/inkwave-api/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNoSession      = errors.New("session not found")
	ErrSessionExpired = errors.New("session expired")
)

// DefaultCookieName 默认会话Cookie名称
const DefaultCookieName = "session_id"

// Data 会话内容
type Data struct {
	UserID uint `json:"user_id"`
}

// Store 数据库会话存储
type Store struct {
	db           *gorm.DB
	cookieName   string
	lifetime     time.Duration
	cookieSecure bool
}

// NewStore 创建会话存储实例
func NewStore(db *gorm.DB, cfg *config.SessionConfig) *Store {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	expireHours := cfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 24 * 7
	}

	return &Store{
		db:           db,
		cookieName:   cookieName,
		lifetime:     time.Duration(expireHours) * time.Hour,
		cookieSecure: cfg.CookieSecure,
	}
}

// CookieName 会话Cookie名称
func (s *Store) CookieName() string {
	return s.cookieName
}

// CookieSecure 是否仅通过HTTPS下发Cookie
func (s *Store) CookieSecure() bool {
	return s.cookieSecure
}

// MaxAge Cookie有效期（秒）
func (s *Store) MaxAge() int {
	return int(s.lifetime / time.Second)
}

// Create 为用户创建新会话，返回会话ID
func (s *Store) Create(userID uint) (string, error) {
	raw, err := json.Marshal(Data{UserID: userID})
	if err != nil {
		return "", err
	}

	sess := &model.Session{
		ID:        uuid.New().String(),
		Data:      datatypes.JSON(raw),
		ExpiresAt: time.Now().Add(s.lifetime),
	}

	if err := s.db.Create(sess).Error; err != nil {
		return "", err
	}

	return sess.ID, nil
}

// Resolve 根据会话ID解析出用户ID，过期会话被清除
func (s *Store) Resolve(id string) (uint, error) {
	var sess model.Session
	if err := s.db.First(&sess, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoSession
		}
		return 0, err
	}

	if time.Now().After(sess.ExpiresAt) {
		// 顺手清除过期会话
		s.db.Delete(&model.Session{}, "id = ?", id)
		return 0, ErrSessionExpired
	}

	var data Data
	if err := json.Unmarshal(sess.Data, &data); err != nil {
		return 0, err
	}
	if data.UserID == 0 {
		return 0, ErrNoSession
	}

	return data.UserID, nil
}

// Destroy 销毁会话
func (s *Store) Destroy(id string) error {
	return s.db.Delete(&model.Session{}, "id = ?", id).Error
}

// DeleteExpired 清理所有过期会话
func (s *Store) DeleteExpired() error {
	return s.db.Where("expires_at < ?", time.Now()).Delete(&model.Session{}).Error
}
