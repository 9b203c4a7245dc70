package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inkwave/inkwave-api/internal/config"
	"github.com/inkwave/inkwave-api/internal/logger"
	"github.com/inkwave/inkwave-api/internal/model"
)

var (
	dbSeq      int64
	loggerOnce sync.Once
)

// NewTestDB 创建独立的内存数据库并建好全部表
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	initTestLogger()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.InitTables(db))
	return db
}

// initTestLogger 初始化测试用日志器，避免业务代码里的空指针
func initTestLogger() {
	loggerOnce.Do(func() {
		logger.InitLogger(&config.LogConfig{
			Level:    "error",
			Filename: filepath.Join(os.TempDir(), "inkwave-test.log"),
			MaxSize:  10,
		})
	})
}
