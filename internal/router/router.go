package router

import (
	"linknest/internal/handlers"
	"linknest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	voteHandler := handlers.NewVoteHandler()
	userHandler := handlers.NewUserHandler()

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.POST("/signup", authHandler.Signup)                        // 注册
	api.POST("/login", authHandler.Login)                          // 登录
	api.POST("/logout", authHandler.Logout)                        // 退出登录
	api.GET("/me", authHandler.Me)                                 // 当前用户
	api.GET("/posts", postHandler.List)                            // 帖子列表
	api.GET("/posts/:pid", postHandler.Detail)                     // 帖子详情
	api.GET("/posts/:pid/comments", commentHandler.ListByPost)     // 顶层评论列表
	api.GET("/comments/:cid/replies", commentHandler.ListReplies)  // 回复列表
	api.GET("/users/:username", userHandler.Profile)               // 用户主页

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/posts", postHandler.Create)                 // 发布帖子
		authorized.POST("/posts/:pid/comments", commentHandler.Create) // 发表评论
		authorized.POST("/vote/:type/:id", voteHandler.Toggle)        // 投票/取消投票
	}
}
