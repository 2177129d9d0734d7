package blog_service

import (
	"context"
	"strings"
	"time"

	"pet-blog-api/inout"
	"pet-blog-api/model/blog_model"
	"pet-blog-api/mongodb"
	"pet-blog-api/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 帖子列表默认每页数量
const DefaultPostPageSize = 10

// PostFilter 帖子列表过滤条件
type PostFilter struct {
	Category string // 精确匹配，"all"或空表示不过滤
	Tag      string // tags 字段的成员匹配
}

type PostService struct{}

func (s *PostService) collection() *mongo.Collection {
	return mongodb.GetCollection("posts")
}

// List 分页查询已发布的帖子，按创建时间倒序
func (s *PostService) List(ctx context.Context, filter PostFilter, page, pageSize int) (*inout.PostListRes, error) {
	page, pageSize = normalizePaging(page, pageSize, DefaultPostPageSize)
	query := buildPostFilter(filter)
	coll := s.collection()

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, apperr.WrapStore("count posts", err)
	}

	// 同一 createdAt 下按 _id 倒序补充排序，保证分页结果稳定
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperr.WrapStore("find posts", err)
	}

	posts := make([]blog_model.Post, 0, pageSize)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, apperr.WrapStore("decode posts", err)
	}

	return &inout.PostListRes{
		Posts:       posts,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetByID 查询帖子详情并原子地将浏览数加一
func (s *PostService) GetByID(ctx context.Context, id string) (*blog_model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	// findOneAndUpdate 保证并发浏览时计数不丢失
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post blog_model.Post
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.WrapStore("get post", err)
	}
	return &post, nil
}

// Create 校验并保存新帖子
func (s *PostService) Create(ctx context.Context, req inout.CreatePostReq) (*blog_model.Post, error) {
	now := time.Now()
	post := &blog_model.Post{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		Images:      req.Images,
		Video:       req.Video,
		SharedLink:  req.SharedLink,
		Tags:        req.Tags,
		Category:    req.Category,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if post.Images == nil {
		post.Images = []blog_model.MediaItem{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Category == "" {
		post.Category = blog_model.CategoryDaily
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	if verr := blog_model.ValidatePost(post); verr != nil {
		return nil, verr
	}

	if _, err := s.collection().InsertOne(ctx, post); err != nil {
		return nil, apperr.WrapStore("insert post", err)
	}
	return post, nil
}

// Update 按补丁更新帖子，只写入请求中出现的字段
func (s *PostService) Update(ctx context.Context, id string, req inout.UpdatePostReq) (*blog_model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	if verr := validatePostPatch(req); verr != nil {
		return nil, verr
	}

	patch := buildPostPatch(req)
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post blog_model.Post
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		opts,
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.WrapStore("update post", err)
	}
	return &post, nil
}

// Delete 物理删除帖子
func (s *PostService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.WrapStore("delete post", err)
	}
	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// IncrementLikes 原子地将点赞数加一并返回新值
func (s *PostService) IncrementLikes(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperr.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post blog_model.Post
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"likes": 1}},
		opts,
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return 0, apperr.ErrNotFound
	}
	if err != nil {
		return 0, apperr.WrapStore("like post", err)
	}
	return post.Likes, nil
}

// buildPostFilter 构造帖子列表的查询条件，未发布的帖子始终排除
func buildPostFilter(filter PostFilter) bson.M {
	query := bson.M{"isPublished": true}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.Tag != "" {
		query["tags"] = bson.M{"$in": []string{filter.Tag}}
	}
	return query
}

// buildPostPatch 将更新请求转为 $set 文档，缺席字段不写入
func buildPostPatch(req inout.UpdatePostReq) bson.M {
	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		patch["content"] = strings.TrimSpace(*req.Content)
	}
	if req.Images != nil {
		patch["images"] = *req.Images
	}
	if req.Video != nil {
		patch["video"] = req.Video
	}
	if req.SharedLink != nil {
		patch["sharedLink"] = req.SharedLink
	}
	if req.Tags != nil {
		patch["tags"] = *req.Tags
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.IsPublished != nil {
		patch["isPublished"] = *req.IsPublished
	}
	return patch
}

// validatePostPatch 校验更新请求中出现的字段
func validatePostPatch(req inout.UpdatePostReq) *apperr.ValidationError {
	verr := &apperr.ValidationError{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			verr.Add("title", "Title is required")
		} else if len([]rune(title)) > blog_model.PostTitleMaxLen {
			verr.Add("title", "Title must be less than 200 characters")
		}
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			verr.Add("content", "Content is required")
		} else if len([]rune(content)) > blog_model.PostContentMaxLen {
			verr.Add("content", "Content must be less than 2000 characters")
		}
	}
	if req.Images != nil && len(*req.Images) > blog_model.PostMaxImages {
		verr.Add("images", "Maximum 18 images allowed per post")
	}
	if req.Category != nil && !blog_model.IsValidCategory(*req.Category) {
		verr.Add("category", "Invalid category")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// normalizePaging 非法的页码和页大小回退为默认值
func normalizePaging(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}

// totalPages 总页数，向上取整
func totalPages(total int64, pageSize int) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
