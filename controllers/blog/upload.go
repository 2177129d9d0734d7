package blog

import (
	"net/http"
	"strings"

	"pet-blog-api/inout"
	"pet-blog-api/pkg/config"
	"pet-blog-api/pkg/monitoring"
	"pet-blog-api/pkg/response"
	"pet-blog-api/utils"

	"github.com/gin-gonic/gin"
)

// mediaUtil 按当前配置创建媒体托管客户端
func mediaUtil() (*utils.MediaUtil, error) {
	return utils.NewMediaUtil(config.GetConfig().Media)
}

// UploadImage 上传单张图片
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	util, err := mediaUtil()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to upload media")
		return
	}
	defer util.Close()

	info, err := util.UploadImage(c.Request.Context(), file)
	if err != nil {
		monitoring.RecordMediaUpload("image", "failed")
		response.FromError(c, err, "Media not found")
		return
	}
	monitoring.RecordMediaUpload("image", "ok")
	response.JSON(c, inout.MediaRes{
		URL:     info.URL,
		MediaID: info.MediaID,
		Width:   info.Width,
		Height:  info.Height,
	})
}

// UploadImages 批量上传图片，任一文件失败则整体失败
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No files uploaded")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "No files uploaded")
		return
	}

	util, err := mediaUtil()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to upload media")
		return
	}
	defer util.Close()

	infos, err := util.UploadImages(c.Request.Context(), files)
	if err != nil {
		monitoring.RecordMediaUpload("image", "failed")
		response.FromError(c, err, "Media not found")
		return
	}

	results := make([]inout.MediaRes, len(infos))
	for i, info := range infos {
		results[i] = inout.MediaRes{
			URL:     info.URL,
			MediaID: info.MediaID,
			Width:   info.Width,
			Height:  info.Height,
		}
	}
	monitoring.RecordMediaUpload("image", "ok")
	response.JSON(c, inout.MediaListRes{Images: results})
}

// UploadVideo 上传单个视频
func UploadVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	util, err := mediaUtil()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to upload media")
		return
	}
	defer util.Close()

	info, err := util.UploadVideo(c.Request.Context(), file)
	if err != nil {
		monitoring.RecordMediaUpload("video", "failed")
		response.FromError(c, err, "Media not found")
		return
	}
	monitoring.RecordMediaUpload("video", "ok")
	response.JSON(c, inout.MediaRes{
		URL:      info.URL,
		MediaID:  info.MediaID,
		Duration: info.Duration,
	})
}

// DeleteMedia 从媒体托管删除文件。媒体ID含路径分隔符，路由按通配符匹配。
func DeleteMedia(c *gin.Context) {
	mediaID := strings.TrimPrefix(c.Param("mediaId"), "/")
	resourceType := c.DefaultQuery("resource_type", "image")

	util, err := mediaUtil()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete media")
		return
	}
	defer util.Close()

	if err := util.Delete(c.Request.Context(), mediaID, resourceType); err != nil {
		response.FromError(c, err, "Media not found")
		return
	}
	response.Message(c, "File deleted successfully")
}
