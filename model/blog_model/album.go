package blog_model

import (
	"strings"
	"time"

	"pet-blog-api/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 相册字段约束
const (
	AlbumTitleMaxLen       = 100
	AlbumDescriptionMaxLen = 500
)

// AlbumCover 相册封面，与 images 列表相互独立
type AlbumCover struct {
	URL     string `json:"url" bson:"url"`
	MediaID string `json:"mediaId,omitempty" bson:"mediaId,omitempty"`
}

// AlbumImage 相册内的单张图片，删除时按图片ID寻址
type AlbumImage struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	URL        string             `json:"url" bson:"url"`
	Caption    string             `json:"caption,omitempty" bson:"caption,omitempty"`
	MediaID    string             `json:"mediaId,omitempty" bson:"mediaId,omitempty"`
	UploadedAt time.Time          `json:"uploadedAt" bson:"uploadedAt"`
}

// Album 相册
type Album struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`             // 标题，1-100字符
	Description string             `json:"description" bson:"description"` // 描述，至多500字符
	Cover       *AlbumCover        `json:"cover,omitempty" bson:"cover,omitempty"`
	Images      []AlbumImage       `json:"images" bson:"images"`
	Tags        []string           `json:"tags" bson:"tags"`
	IsPublic    bool               `json:"isPublic" bson:"isPublic"` // 仅公开相册出现在列表
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"` // 图片增删同样会刷新
}

// ValidateAlbum 相册创建前的完整校验
func ValidateAlbum(a *Album) *apperr.ValidationError {
	verr := &apperr.ValidationError{}

	title := strings.TrimSpace(a.Title)
	if title == "" {
		verr.Add("title", "Title is required")
	} else if len([]rune(title)) > AlbumTitleMaxLen {
		verr.Add("title", "Title must be less than 100 characters")
	}

	if len([]rune(a.Description)) > AlbumDescriptionMaxLen {
		verr.Add("description", "Description must be less than 500 characters")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
