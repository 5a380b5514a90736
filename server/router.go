package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "videotube/interfaces/http"
	"videotube/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	commentHandler httpHandler.ICommentHandler,
	likeHandler httpHandler.ILikeHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	tweetHandler httpHandler.ITweetHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	healthHandler httpHandler.IHealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)
	router.GET("/healthz", healthHandler.Healthz)

	api := router.Group("api")

	users := api.Group("users")
	users.GET("/me", middleware.Auth(), userHandler.Me)
	users.PATCH("/me", middleware.Auth(), userHandler.UpdateProfile)
	users.PATCH("/me/avatar", middleware.Auth(), userHandler.UpdateAvatar)
	users.PATCH("/me/cover-image", middleware.Auth(), userHandler.UpdateCoverImage)
	users.GET("/me/history", middleware.Auth(), userHandler.WatchHistory)
	users.GET("/c/:userId", userHandler.GetChannel)

	videos := api.Group("videos")
	videos.GET("", middleware.AuthOptional(), videoHandler.List)
	videos.POST("", middleware.Auth(), videoHandler.Publish)
	videos.GET("/:videoId", middleware.AuthOptional(), videoHandler.Get)
	videos.PATCH("/:videoId", middleware.Auth(), videoHandler.Update)
	videos.DELETE("/:videoId", middleware.Auth(), videoHandler.Delete)
	videos.PATCH("/:videoId/toggle-publish", middleware.Auth(), videoHandler.TogglePublish)
	videos.POST("/:videoId/views", videoHandler.IncrementViews)

	// Playlists include the by-convention watch lists, so even the read
	// routes require an authenticated caller.
	playlists := api.Group("playlists", middleware.Auth())
	playlists.POST("", playlistHandler.Create)
	playlists.GET("/:playlistId", playlistHandler.Get)
	playlists.PATCH("/:playlistId", playlistHandler.Update)
	playlists.DELETE("/:playlistId", playlistHandler.Delete)
	playlists.GET("/user/:userId", playlistHandler.ListByUser)
	playlists.GET("/contains/:videoId", playlistHandler.ListContainingVideo)
	playlists.POST("/:playlistId/videos/:videoId", playlistHandler.AddVideo)
	playlists.DELETE("/:playlistId/videos/:videoId", playlistHandler.RemoveVideo)

	comments := api.Group("comments")
	comments.GET("/:videoId", middleware.AuthOptional(), commentHandler.ListByVideo)
	comments.POST("/:videoId", middleware.Auth(), commentHandler.Add)
	comments.PATCH("/c/:commentId", middleware.Auth(), commentHandler.Update)
	comments.DELETE("/c/:commentId", middleware.Auth(), commentHandler.Delete)

	likes := api.Group("likes", middleware.Auth())
	likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideo)
	likes.POST("/toggle/c/:commentId", likeHandler.ToggleComment)
	likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweet)
	likes.GET("/status/v/:videoId", likeHandler.VideoStatus)
	likes.GET("/videos", likeHandler.ListLikedVideos)

	subscriptions := api.Group("subscriptions")
	subscriptions.POST("/c/:channelId", middleware.Auth(), subscriptionHandler.Toggle)
	subscriptions.GET("/c/:channelId", subscriptionHandler.ListChannelSubscribers)
	subscriptions.GET("/u/:subscriberId", subscriptionHandler.ListSubscribedChannels)

	tweets := api.Group("tweets")
	tweets.POST("", middleware.Auth(), tweetHandler.Create)
	tweets.GET("/user/:userId", tweetHandler.ListByUser)
	tweets.PATCH("/:tweetId", middleware.Auth(), tweetHandler.Update)
	tweets.DELETE("/:tweetId", middleware.Auth(), tweetHandler.Delete)

	dashboard := api.Group("dashboard", middleware.Auth())
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/videos", dashboardHandler.Videos)

	return router
}
