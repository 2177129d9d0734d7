package inout

import "pet-blog-api/model/blog_model"

// CreatePostReq 创建帖子请求
type CreatePostReq struct {
	Title       string                 `json:"title" binding:"required,max=200"`    // 标题
	Content     string                 `json:"content" binding:"required,max=2000"` // 内容
	Images      []blog_model.MediaItem `json:"images" binding:"omitempty,max=18"`   // 图片列表，最多18张
	Video       *blog_model.MediaItem  `json:"video"`
	SharedLink  *blog_model.SharedLink `json:"sharedLink"`
	Tags        []string               `json:"tags"`
	Category    string                 `json:"category" binding:"omitempty,oneof=daily funny training health adventure other"`
	IsPublished *bool                  `json:"isPublished"`
}

// UpdatePostReq 更新帖子请求，仅写入出现的字段
type UpdatePostReq struct {
	Title       *string                 `json:"title" binding:"omitempty,max=200"`
	Content     *string                 `json:"content" binding:"omitempty,max=2000"`
	Images      *[]blog_model.MediaItem `json:"images" binding:"omitempty,max=18"`
	Video       *blog_model.MediaItem   `json:"video"`
	SharedLink  *blog_model.SharedLink  `json:"sharedLink"`
	Tags        *[]string               `json:"tags"`
	Category    *string                 `json:"category" binding:"omitempty,oneof=daily funny training health adventure other"`
	IsPublished *bool                   `json:"isPublished"`
}

// LinkPreviewReq 链接预览请求
type LinkPreviewReq struct {
	URL string `json:"url"`
}
