package response

import (
	"errors"
	"net/http"

	"pet-blog-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// JSON 成功响应，原样输出数据
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 仅含提示消息的成功响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Error 错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationError 校验错误响应，附带各字段的错误明细
func ValidationError(c *gin.Context, verr *apperr.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  verr.Error(),
		"errors": verr.Fields,
	})
}

// FromError 将业务错误映射为 HTTP 响应
func FromError(c *gin.Context, err error, notFoundMsg string) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		ValidationError(c, verr)
	case errors.Is(err, apperr.ErrNotFound):
		Error(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, apperr.ErrFetchFailed):
		Error(c, http.StatusInternalServerError, "Failed to fetch link preview")
	case errors.Is(err, apperr.ErrUploadFailed):
		Error(c, http.StatusInternalServerError, "Failed to upload media")
	default:
		Error(c, http.StatusInternalServerError, err.Error())
	}
}
