package router

import (
	"pet-blog-api/controllers/blog"
	"pet-blog-api/controllers/health"
	"pet-blog-api/middleware"

	"github.com/gin-gonic/gin"
)

// Init 注册全部API路由
func Init(r *gin.Engine) {
	healthController := health.NewHealthController()

	api := r.Group("/api")
	{
		api.GET("/health", healthController.CheckHealth)
		api.GET("/health/ready", healthController.CheckReadiness)

		posts := api.Group("/posts")
		{
			posts.GET("", blog.GetPosts)
			posts.POST("", blog.CreatePost)
			posts.POST("/link-preview", blog.GetLinkPreview)
			posts.GET("/:id", blog.GetPost)
			posts.PUT("/:id", blog.UpdatePost)
			posts.DELETE("/:id", blog.DeletePost)
			posts.POST("/:id/like", blog.LikePost)
		}

		albums := api.Group("/albums")
		{
			albums.GET("", blog.GetAlbums)
			albums.POST("", blog.CreateAlbum)
			albums.GET("/:id", blog.GetAlbum)
			albums.PUT("/:id", blog.UpdateAlbum)
			albums.DELETE("/:id", blog.DeleteAlbum)
			albums.POST("/:id/images", blog.AddAlbumImage)
			albums.DELETE("/:id/images/:imageId", blog.RemoveAlbumImage)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/image", blog.UploadImage)
			upload.POST("/images", blog.UploadImages)
			upload.POST("/video", blog.UploadVideo)
			// 媒体ID含路径分隔符，用通配符匹配
			upload.DELETE("/*mediaId", blog.DeleteMedia)
		}
	}

	r.NoRoute(middleware.NotFoundHandler())
}
