package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwave/inkwave-api/internal/config"
	"github.com/inkwave/inkwave-api/internal/database"
	"github.com/inkwave/inkwave-api/internal/logger"
	"github.com/inkwave/inkwave-api/internal/model"
	"github.com/inkwave/inkwave-api/internal/router"
	"github.com/inkwave/inkwave-api/pkg/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd 启动服务命令
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动HTTP服务",
	Long:  `启动Inkwave API的HTTP服务器`,
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

// migrateCmd 数据库迁移命令
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "初始化数据库表",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initializeSystem(); err != nil {
			fmt.Printf("系统初始化失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info("数据库表初始化完成")
	},
}

// initializeSystem 初始化系统
func initializeSystem() error {
	// 初始化配置
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("配置初始化失败: %v", err)
	}

	// 初始化日志
	if err := logger.Init(); err != nil {
		return fmt.Errorf("日志初始化失败: %v", err)
	}

	// 初始化MySQL数据库
	db := database.GetDB()
	if db == nil {
		return fmt.Errorf("MySQL数据库连接失败")
	}

	// 初始化数据库表
	if err := model.InitTables(db); err != nil {
		return fmt.Errorf("初始化数据库表失败: %v", err)
	}

	return nil
}

// startServer 启动HTTP服务
func startServer() {
	// 初始化系统
	if err := initializeSystem(); err != nil {
		fmt.Printf("系统初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.GetConfig()

	// Redis连接失败时降级为无缓存运行
	rdb := database.GetRedis()

	// 会话存储
	store := session.NewStore(database.GetDB(), &cfg.Session)

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 初始化路由
	r := gin.New()
	r.Use(logger.GinLogger(), gin.Recovery())
	router.Setup(r, database.GetDB(), rdb, store)

	// 启动HTTP服务
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: r,
	}

	// 优雅关闭
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP服务启动失败", zap.Error(err))
		}
	}()

	logger.Info("服务已启动", zap.String("addr", srv.Addr))

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("关闭服务...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("服务关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}
