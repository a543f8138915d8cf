package services

import (
	"errors"
)

// NotFoundError 事务中任一步骤的目标缺失,整个事务回滚
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

var (
	ErrPostNotFound    = &NotFoundError{Message: "文章不存在"}
	ErrCommentNotFound = &NotFoundError{Message: "评论不存在"}
	ErrParentNotFound  = &NotFoundError{Message: "父评论不存在"}
	ErrUserNotFound    = &NotFoundError{Message: "用户不存在"}
)

// ValidationError 表单类错误,handler 层据此返回 isFormError
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
