package service

import (
	"errors"

	"github.com/Deepfake2025/Deepfake-rear/internal/repository"
)

var (
	ErrDuplicateEmail        = repository.ErrDuplicateEmail
	ErrUserNotFound          = repository.ErrUserNotFound
	ErrUploadNotFound        = repository.ErrUploadNotFound
	ErrInvalidUserOrPassword = errors.New("用户不存在或者密码不对")
	ErrNothingToUpdate       = errors.New("没有需要更新的字段")
	ErrForbidden             = errors.New("无权操作")
	ErrCredentialUnavailable = errors.New("临时凭证服务不可用")
	ErrBucketMismatch        = errors.New("回调的 bucket 与预期不一致")
	ErrCategoryMismatch      = errors.New("回调的文件分类与上传记录不一致")
)
