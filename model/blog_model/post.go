package blog_model

import (
	"strings"
	"time"

	"pet-blog-api/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 帖子字段约束
const (
	PostTitleMaxLen   = 200
	PostContentMaxLen = 2000
	PostMaxImages     = 18
)

// 帖子分类
const (
	CategoryDaily     = "daily"
	CategoryFunny     = "funny"
	CategoryTraining  = "training"
	CategoryHealth    = "health"
	CategoryAdventure = "adventure"
	CategoryOther     = "other"
)

// Categories 所有合法分类
var Categories = []string{
	CategoryDaily,
	CategoryFunny,
	CategoryTraining,
	CategoryHealth,
	CategoryAdventure,
	CategoryOther,
}

// IsValidCategory 检查分类是否合法
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MediaItem 帖子引用的单个媒体（图片或视频）
type MediaItem struct {
	URL     string `json:"url" bson:"url"`
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`
	MediaID string `json:"mediaId,omitempty" bson:"mediaId,omitempty"`
}

// SharedLink 链接预览结果，存储时不做二次加工
type SharedLink struct {
	URL         string `json:"url" bson:"url"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Thumbnail   string `json:"thumbnail" bson:"thumbnail"`
	Domain      string `json:"domain" bson:"domain"`
}

// Post 帖子
type Post struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`             // 标题，1-200字符
	Content     string             `json:"content" bson:"content"`         // 内容，1-2000字符
	Images      []MediaItem        `json:"images" bson:"images"`           // 图片列表，至多18张
	Video       *MediaItem         `json:"video,omitempty" bson:"video,omitempty"`
	SharedLink  *SharedLink        `json:"sharedLink,omitempty" bson:"sharedLink,omitempty"`
	Tags        []string           `json:"tags" bson:"tags"`               // 展示时保留插入顺序
	Category    string             `json:"category" bson:"category"`       // 分类，默认 daily
	Likes       int64              `json:"likes" bson:"likes"`             // 点赞数，只增不减
	Views       int64              `json:"views" bson:"views"`             // 浏览数，只增不减
	IsPublished bool               `json:"isPublished" bson:"isPublished"` // 未发布的帖子不出现在列表
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidatePost 帖子创建前的完整校验
func ValidatePost(p *Post) *apperr.ValidationError {
	verr := &apperr.ValidationError{}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		verr.Add("title", "Title is required")
	} else if len([]rune(title)) > PostTitleMaxLen {
		verr.Add("title", "Title must be less than 200 characters")
	}

	content := strings.TrimSpace(p.Content)
	if content == "" {
		verr.Add("content", "Content is required")
	} else if len([]rune(content)) > PostContentMaxLen {
		verr.Add("content", "Content must be less than 2000 characters")
	}

	if len(p.Images) > PostMaxImages {
		verr.Add("images", "Maximum 18 images allowed per post")
	}

	if p.Category != "" && !IsValidCategory(p.Category) {
		verr.Add("category", "Invalid category")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
