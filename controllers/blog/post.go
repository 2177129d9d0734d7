package blog

import (
	"net/http"

	"pet-blog-api/inout"
	"pet-blog-api/pkg/monitoring"
	"pet-blog-api/pkg/response"
	"pet-blog-api/services/blog_service"

	"github.com/gin-gonic/gin"
)

// GetPosts 获取帖子分页列表
func GetPosts(c *gin.Context) {
	filter := blog_service.PostFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
	}
	page := parseIntQuery(c, "page")
	limit := parseIntQuery(c, "limit")

	data, err := postService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.FromError(c, err, "Post not found")
		return
	}
	response.JSON(c, data)
}

// GetPost 获取帖子详情，浏览数加一
func GetPost(c *gin.Context) {
	post, err := postService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "Post not found")
		return
	}
	monitoring.RecordPostView()
	response.JSON(c, post)
}

// CreatePost 创建帖子
func CreatePost(c *gin.Context) {
	var req inout.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindError(err))
		return
	}

	post, err := postService.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, "Post not found")
		return
	}
	monitoring.RecordPostCreated()
	response.Created(c, post)
}

// UpdatePost 更新帖子
func UpdatePost(c *gin.Context) {
	var req inout.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindError(err))
		return
	}

	post, err := postService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err, "Post not found")
		return
	}
	response.JSON(c, post)
}

// DeletePost 删除帖子
func DeletePost(c *gin.Context) {
	if err := postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err, "Post not found")
		return
	}
	response.Message(c, "Post deleted successfully")
}

// LikePost 点赞
func LikePost(c *gin.Context) {
	likes, err := postService.IncrementLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "Post not found")
		return
	}
	monitoring.RecordPostLike()
	response.JSON(c, inout.LikeRes{Likes: likes})
}

// GetLinkPreview 抓取链接预览
func GetLinkPreview(c *gin.Context) {
	var req inout.LinkPreviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "URL is required")
		return
	}
	if req.URL == "" {
		response.Error(c, http.StatusBadRequest, "URL is required")
		return
	}

	preview, err := getPreviewService().Fetch(c.Request.Context(), req.URL)
	if err != nil {
		monitoring.RecordLinkPreview("failed")
		response.FromError(c, err, "Post not found")
		return
	}
	monitoring.RecordLinkPreview("ok")
	response.JSON(c, preview)
}
