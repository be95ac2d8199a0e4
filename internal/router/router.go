package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"Community_Hub/internal/config"
	"Community_Hub/internal/handler"
	"Community_Hub/internal/middleware"
	"Community_Hub/internal/service"
)

func InitRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.LangMiddleware())

	emailSvc := service.NewEmailService(cfg.SMTP)
	userSvc := service.NewUserService(emailSvc)
	communitySvc := service.NewCommunityService()
	postSvc := service.NewPostService()
	eventSvc := service.NewEventService()
	pollSvc := service.NewPollService()
	feedSvc := service.NewFeedService(pollSvc)
	uploadSvc := service.NewUploadService(cfg.Cloudinary)

	user := handler.NewUserHandler(userSvc)
	community := handler.NewCommunityHandler(communitySvc)
	post := handler.NewPostHandler(postSvc)
	event := handler.NewEventHandler(eventSvc)
	poll := handler.NewPollHandler(pollSvc)
	feed := handler.NewFeedHandler(feedSvc)
	upload := handler.NewUploadHandler(uploadSvc)

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/forgot-password", user.ForgotPassword)
		userGroup.POST("/reset-password", user.ResetPassword)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.GET("/me", user.Me)
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.PATCH("/profile", user.UpdateProfile)
		authGroup.PATCH("/preferences", user.UpdatePreferences)
		authGroup.POST("/unlock-themes", user.UnlockThemes)
	}

	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.POST("/join", community.Join)
		communityGroup.POST("/leave", community.Leave)
		communityGroup.GET("/list", community.List)
		communityGroup.GET("/mine", community.ListMine)
		communityGroup.GET("/slug/:slug", community.GetBySlug)
	}

	postGroup := r.Group("/api/post")
	postGroup.Use(middleware.AuthMiddleware())
	{
		postGroup.POST("/create", post.Create)
		postGroup.GET("/list/:id", post.ListByCommunity)
		postGroup.GET("/pending/:id", post.ListPending)
		postGroup.POST("/approve/:id", post.Approve)
		postGroup.POST("/pin/:id", post.Pin)
		postGroup.DELETE("/:id", post.Delete)
	}

	eventGroup := r.Group("/api/event")
	eventGroup.Use(middleware.AuthMiddleware())
	{
		eventGroup.POST("/create", event.Create)
		eventGroup.GET("/list/:id", event.ListByCommunity)
		eventGroup.POST("/rsvp/:id", event.RSVP)
	}

	pollGroup := r.Group("/api/poll")
	pollGroup.Use(middleware.AuthMiddleware())
	{
		pollGroup.POST("/create", poll.Create)
		pollGroup.GET("/list/:id", poll.ListByCommunity)
		pollGroup.POST("/vote/:id", poll.Vote)
		pollGroup.GET("/tally/:id", poll.Tally)
	}

	feedGroup := r.Group("/api/feed")
	feedGroup.Use(middleware.AuthMiddleware())
	{
		feedGroup.GET("/", feed.Load)
	}

	uploadGroup := r.Group("/api/upload")
	uploadGroup.Use(middleware.AuthMiddleware())
	{
		uploadGroup.POST("/image", upload.Upload)
	}

	return r
}
