package inout

import "pet-blog-api/model/blog_model"

// CreateAlbumReq 创建相册请求
type CreateAlbumReq struct {
	Title       string                 `json:"title" binding:"required,max=100"`       // 标题
	Description string                 `json:"description" binding:"omitempty,max=500"` // 描述
	Cover       *blog_model.AlbumCover `json:"cover"`
	Tags        []string               `json:"tags"`
	IsPublic    *bool                  `json:"isPublic"`
}

// UpdateAlbumReq 更新相册请求，仅写入出现的字段
type UpdateAlbumReq struct {
	Title       *string                `json:"title" binding:"omitempty,max=100"`
	Description *string                `json:"description" binding:"omitempty,max=500"`
	Cover       *blog_model.AlbumCover `json:"cover"`
	Tags        *[]string              `json:"tags"`
	IsPublic    *bool                  `json:"isPublic"`
}

// AddAlbumImageReq 向相册追加图片请求
type AddAlbumImageReq struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
	MediaID string `json:"mediaId"`
}
