package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inkwave/inkwave-api/internal/config"
	"github.com/inkwave/inkwave-api/internal/controller"
	"github.com/inkwave/inkwave-api/internal/middleware"
	"github.com/inkwave/inkwave-api/internal/service"
	"github.com/inkwave/inkwave-api/pkg/session"
)

// Setup 注册全部API路由
func Setup(r *gin.Engine, db *gorm.DB, rdb *redis.Client, store *session.Store) {
	cfg := config.GetConfig()

	userService := service.NewUserService(db)
	waitlistService := service.NewWaitlistService(db, rdb)
	articleService := service.NewArticleService(db)
	interactionService := service.NewInteractionService(db)
	commentService := service.NewCommentService(db, cfg.Comment.MaxReplyDepth)
	readingHistoryService := service.NewReadingHistoryService(db)

	authCtl := controller.NewAuthController(userService, store)
	waitlistCtl := controller.NewWaitlistController(waitlistService)
	articleCtl := controller.NewArticleController(articleService, interactionService)
	commentCtl := controller.NewCommentController(commentService)
	userCtl := controller.NewUserController(userService)
	historyCtl := controller.NewReadingHistoryController(readingHistoryService)

	requireAuth := middleware.RequireAuth(store)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authCtl.Register)
			auth.POST("/login", authCtl.Login)
			auth.POST("/logout", requireAuth, authCtl.Logout)
			auth.GET("/me", requireAuth, authCtl.Me)
			auth.PUT("/me", requireAuth, authCtl.UpdateMe)
		}

		waitlist := api.Group("/waitlist")
		{
			waitlist.POST("", waitlistCtl.Join)
			waitlist.GET("/count", waitlistCtl.Count)
		}

		articles := api.Group("/articles")
		{
			articles.POST("", requireAuth, articleCtl.Create)
			articles.GET("", articleCtl.List)
			articles.GET("/:id", articleCtl.Detail)
			articles.PUT("/:id", requireAuth, articleCtl.Update)
			articles.POST("/:id/like", requireAuth, articleCtl.ToggleLike)
			articles.POST("/:id/bookmark", requireAuth, articleCtl.ToggleBookmark)
			articles.POST("/:id/view", requireAuth, articleCtl.RecordView)
			articles.POST("/:id/comments", requireAuth, commentCtl.Create)
			articles.GET("/:id/comments", commentCtl.List)
		}

		comments := api.Group("/comments")
		{
			comments.POST("/:id/like", requireAuth, commentCtl.Like)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", userCtl.Profile)
			users.POST("/:id/follow", requireAuth, userCtl.Follow)
			users.POST("/:id/unfollow", requireAuth, userCtl.Unfollow)
			users.GET("/:id/followers", userCtl.Followers)
			users.GET("/:id/following", userCtl.Following)
			users.GET("/:id/following/check", requireAuth, userCtl.CheckFollowing)
		}

		me := api.Group("/me", requireAuth)
		{
			me.GET("/articles", articleCtl.MyArticles)
			me.GET("/bookmarks", articleCtl.MyBookmarks)
			me.GET("/reading-history", historyCtl.MyHistory)
		}
	}
}
