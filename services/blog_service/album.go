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

// 相册列表默认每页数量
const DefaultAlbumPageSize = 12

type AlbumService struct{}

func (s *AlbumService) collection() *mongo.Collection {
	return mongodb.GetCollection("albums")
}

// List 分页查询公开相册，按创建时间倒序
func (s *AlbumService) List(ctx context.Context, page, pageSize int) (*inout.AlbumListRes, error) {
	page, pageSize = normalizePaging(page, pageSize, DefaultAlbumPageSize)
	query := bson.M{"isPublic": true}
	coll := s.collection()

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, apperr.WrapStore("count albums", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperr.WrapStore("find albums", err)
	}

	albums := make([]blog_model.Album, 0, pageSize)
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, apperr.WrapStore("decode albums", err)
	}

	return &inout.AlbumListRes{
		Albums:      albums,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetByID 查询相册详情
func (s *AlbumService) GetByID(ctx context.Context, id string) (*blog_model.Album, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var album blog_model.Album
	err = s.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&album)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.WrapStore("get album", err)
	}
	return &album, nil
}

// Create 校验并保存新相册
func (s *AlbumService) Create(ctx context.Context, req inout.CreateAlbumReq) (*blog_model.Album, error) {
	now := time.Now()
	album := &blog_model.Album{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Cover:       req.Cover,
		Images:      []blog_model.AlbumImage{},
		Tags:        req.Tags,
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if album.Tags == nil {
		album.Tags = []string{}
	}
	if req.IsPublic != nil {
		album.IsPublic = *req.IsPublic
	}

	if verr := blog_model.ValidateAlbum(album); verr != nil {
		return nil, verr
	}

	if _, err := s.collection().InsertOne(ctx, album); err != nil {
		return nil, apperr.WrapStore("insert album", err)
	}
	return album, nil
}

// Update 按补丁更新相册，只写入请求中出现的字段
func (s *AlbumService) Update(ctx context.Context, id string, req inout.UpdateAlbumReq) (*blog_model.Album, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	if verr := validateAlbumPatch(req); verr != nil {
		return nil, verr
	}

	patch := buildAlbumPatch(req)
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var album blog_model.Album
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		opts,
	).Decode(&album)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.WrapStore("update album", err)
	}
	return &album, nil
}

// Delete 物理删除相册
func (s *AlbumService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.WrapStore("delete album", err)
	}
	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// AppendImage 向相册追加一张图片，单次原子更新，并发追加互不覆盖
func (s *AlbumService) AppendImage(ctx context.Context, albumID string, req inout.AddAlbumImageReq) (*blog_model.Album, error) {
	oid, err := primitive.ObjectIDFromHex(albumID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	image := blog_model.AlbumImage{
		ID:         primitive.NewObjectID(),
		URL:        req.URL,
		Caption:    req.Caption,
		MediaID:    req.MediaID,
		UploadedAt: time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var album blog_model.Album
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"images": image},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&album)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.WrapStore("append album image", err)
	}
	return &album, nil
}

// RemoveImage 按图片ID从相册移除图片；ID不存在时相册保持原样返回
func (s *AlbumService) RemoveImage(ctx context.Context, albumID, imageID string) (*blog_model.Album, error) {
	oid, err := primitive.ObjectIDFromHex(albumID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	imageOID, err := primitive.ObjectIDFromHex(imageID)
	if err != nil {
		return nil, apperr.Invalid("imageId", "Invalid image id")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var album blog_model.Album
	err = s.collection().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$pull": bson.M{"images": bson.M{"_id": imageOID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&album)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.WrapStore("remove album image", err)
	}
	return &album, nil
}

// buildAlbumPatch 将更新请求转为 $set 文档，缺席字段不写入
func buildAlbumPatch(req inout.UpdateAlbumReq) bson.M {
	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Cover != nil {
		patch["cover"] = req.Cover
	}
	if req.Tags != nil {
		patch["tags"] = *req.Tags
	}
	if req.IsPublic != nil {
		patch["isPublic"] = *req.IsPublic
	}
	return patch
}

// validateAlbumPatch 校验更新请求中出现的字段
func validateAlbumPatch(req inout.UpdateAlbumReq) *apperr.ValidationError {
	verr := &apperr.ValidationError{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			verr.Add("title", "Title is required")
		} else if len([]rune(title)) > blog_model.AlbumTitleMaxLen {
			verr.Add("title", "Title must be less than 100 characters")
		}
	}
	if req.Description != nil && len([]rune(*req.Description)) > blog_model.AlbumDescriptionMaxLen {
		verr.Add("description", "Description must be less than 500 characters")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
