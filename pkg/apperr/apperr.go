package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// 业务错误类别，controller 层据此映射 HTTP 状态码
var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("resource not found")
	// ErrFetchFailed 链接预览抓取失败
	ErrFetchFailed = errors.New("failed to fetch link preview")
	// ErrUploadFailed 媒体上传失败
	ErrUploadFailed = errors.New("failed to upload media")
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 校验错误，聚合各字段的错误明细
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return strings.Join(msgs, "; ")
}

// Add 追加一条字段错误
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors 是否存在校验错误
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Invalid 构造单字段校验错误
func Invalid(field, message string) *ValidationError {
	return (&ValidationError{}).Add(field, message)
}

// StoreError 持久化层错误
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStore 包装持久化错误，保留底层原因
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
