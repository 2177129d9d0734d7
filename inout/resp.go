package inout

import "pet-blog-api/model/blog_model"

// PostListRes 帖子分页响应
type PostListRes struct {
	Posts       []blog_model.Post `json:"posts"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}

// AlbumListRes 相册分页响应
type AlbumListRes struct {
	Albums      []blog_model.Album `json:"albums"`
	TotalPages  int64              `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Total       int64              `json:"total"`
}

// LikeRes 点赞响应
type LikeRes struct {
	Likes int64 `json:"likes"`
}

// MediaRes 媒体上传结果
type MediaRes struct {
	URL      string  `json:"url"`
	MediaID  string  `json:"mediaId"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// MediaListRes 批量上传结果
type MediaListRes struct {
	Images []MediaRes `json:"images"`
}
