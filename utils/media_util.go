package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"pet-blog-api/pkg/apperr"
	"pet-blog-api/pkg/config"

	"github.com/google/uuid"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
	"golang.org/x/sync/errgroup"
)

// 最大允许的文件大小 (50MB)
const MaxFileSize = 50 * 1024 * 1024

// 批量上传单次最多文件数，与帖子图片上限一致
const MaxBatchFiles = 18

// 对象存储目录
const (
	imageFolder = "pet-blog/images"
	videoFolder = "pet-blog/videos"
)

// MediaInfo 上传结果：可访问URL、媒体ID及探测到的元数据
type MediaInfo struct {
	URL      string
	MediaID  string
	Width    int
	Height   int
	Duration float64 // 视频时长不在本进程探测，始终为0
}

// MediaUtil 媒体托管工具类，封装对象存储客户端
type MediaUtil struct {
	config config.MediaConfig
	client *tos.ClientV2
}

// NewMediaUtil 创建媒体托管工具实例
func NewMediaUtil(cfg config.MediaConfig) (*MediaUtil, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.BucketName == "" {
		return nil, errors.New("TOS配置参数不完整")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30
	}

	credential := tos.NewStaticCredentials(cfg.AccessKeyID, cfg.AccessKeySecret)
	client, err := tos.NewClientV2(cfg.Endpoint,
		tos.WithCredentials(credential),
		tos.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("初始化TOS客户端失败: %w", err)
	}

	return &MediaUtil{config: cfg, client: client}, nil
}

// Close 关闭客户端并释放资源
func (u *MediaUtil) Close() {
	if u.client != nil {
		u.client.Close()
	}
}

// UploadImage 上传单张图片，返回URL、媒体ID与图片尺寸
func (u *MediaUtil) UploadImage(ctx context.Context, file *multipart.FileHeader) (*MediaInfo, error) {
	data, err := readUpload(file, "image/")
	if err != nil {
		return nil, err
	}

	info := &MediaInfo{}
	// 尺寸探测失败不阻断上传，宽高保持为0
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		info.Width = cfg.Width
		info.Height = cfg.Height
	}

	key := objectKey(imageFolder, file.Filename)
	if err := u.putObject(ctx, key, data); err != nil {
		return nil, err
	}

	info.URL = u.objectURL(key)
	info.MediaID = key
	return info, nil
}

// UploadImages 并发上传多张图片。任何一张失败则整体失败，不保留部分成功的结果。
func (u *MediaUtil) UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]MediaInfo, error) {
	if len(files) > MaxBatchFiles {
		return nil, apperr.Invalid("images", fmt.Sprintf("At most %d files per upload", MaxBatchFiles))
	}

	results := make([]MediaInfo, len(files))
	group, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			info, err := u.UploadImage(gctx, file)
			if err != nil {
				return err
			}
			results[i] = *info
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// UploadVideo 上传单个视频，返回URL与媒体ID
func (u *MediaUtil) UploadVideo(ctx context.Context, file *multipart.FileHeader) (*MediaInfo, error) {
	data, err := readUpload(file, "video/")
	if err != nil {
		return nil, err
	}

	key := objectKey(videoFolder, file.Filename)
	if err := u.putObject(ctx, key, data); err != nil {
		return nil, err
	}

	return &MediaInfo{URL: u.objectURL(key), MediaID: key}, nil
}

// Delete 按媒体ID删除对象。resourceType 为兼容参数，仅允许 image/video。
func (u *MediaUtil) Delete(ctx context.Context, mediaID, resourceType string) error {
	if mediaID == "" {
		return apperr.Invalid("mediaId", "Media id is required")
	}
	if resourceType != "" && resourceType != "image" && resourceType != "video" {
		return apperr.Invalid("resource_type", "Resource type must be image or video")
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.config.Timeout)*time.Second)
	defer cancel()

	input := &tos.DeleteObjectV2Input{
		Bucket: u.config.BucketName,
		Key:    mediaID,
	}
	if _, err := u.client.DeleteObjectV2(ctx, input); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	return nil
}

// putObject 上传字节流到对象存储
func (u *MediaUtil) putObject(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.config.Timeout)*time.Second)
	defer cancel()

	input := &tos.PutObjectV2Input{
		PutObjectBasicInput: tos.PutObjectBasicInput{
			Bucket: u.config.BucketName,
			Key:    key,
		},
		Content: bytes.NewReader(data),
	}
	if _, err := u.client.PutObjectV2(ctx, input); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	return nil
}

// objectURL 拼出对象的可访问URL
func (u *MediaUtil) objectURL(key string) string {
	return strings.TrimSuffix(u.config.BaseURL, "/") + "/" + key
}

// objectKey 生成唯一对象名，保留原始扩展名
func objectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return folder + "/" + uuid.NewString() + ext
}

// readUpload 读入上传内容并校验大小与媒体类型
func readUpload(file *multipart.FileHeader, mimePrefix string) ([]byte, error) {
	if file.Size > MaxFileSize {
		return nil, apperr.Invalid("file", fmt.Sprintf("File too large, maximum %d MB", MaxFileSize/(1024*1024)))
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	if len(data) == 0 {
		return nil, apperr.Invalid("file", "Empty file")
	}

	// 按内容嗅探类型，不信任扩展名
	if !strings.HasPrefix(http.DetectContentType(data), mimePrefix) {
		return nil, apperr.Invalid("file", "Only "+strings.TrimSuffix(mimePrefix, "/")+" files are allowed")
	}

	return data, nil
}
