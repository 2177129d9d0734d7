package blog

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"pet-blog-api/pkg/apperr"
	"pet-blog-api/pkg/config"
	"pet-blog-api/services/blog_service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	postService  = &blog_service.PostService{}
	albumService = &blog_service.AlbumService{}
)

var (
	previewOnce    sync.Once
	previewService *blog_service.PreviewService
)

// getPreviewService 懒加载预览服务，配置在进程启动后才可用
func getPreviewService() *blog_service.PreviewService {
	previewOnce.Do(func() {
		previewService = blog_service.NewPreviewService(config.GetConfig().Preview)
	})
	return previewService
}

// parseIntQuery 解析整型查询参数，非法值返回0由服务层回退为默认值
func parseIntQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}

// bindError 将请求体绑定错误转为字段级校验错误
func bindError(err error) *apperr.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &apperr.ValidationError{}
		for _, fe := range verrs {
			out.Add(strings.ToLower(fe.Field()), validationMessage(fe))
		}
		return out
	}
	return apperr.Invalid("body", "Invalid request body")
}

// validationMessage 按校验标签给出可读的错误消息
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Exceeds maximum of " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}
