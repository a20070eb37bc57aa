package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/strategy"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/errs"
	jwtware "github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/gin-gonic/gin"
)

// uploadCodes 头像和普通文件走同一套流程，只是业务码的模块不同
type uploadCodes struct {
	invalidInput          int
	validationFailed      int
	notFound              int
	forbidden             int
	internal              int
	credentialUnavailable int
}

var (
	avatarCodes = uploadCodes{
		invalidInput:          errs.UploadInvalidInput,
		validationFailed:      errs.UploadValidationFailed,
		notFound:              errs.UploadNotFound,
		forbidden:             errs.UploadForbidden,
		internal:              errs.UploadInternalServerError,
		credentialUnavailable: errs.UploadCredentialUnavailable,
	}
	fileCodes = uploadCodes{
		invalidInput:          errs.FileInvalidInput,
		validationFailed:      errs.FileValidationFailed,
		notFound:              errs.FileNotFound,
		forbidden:             errs.FileForbidden,
		internal:              errs.FileInternalServerError,
		credentialUnavailable: errs.FileCredentialUnavailable,
	}
)

type UploadHandler struct {
	log       logger.Logger
	uploadSvc service.UploadService
}

func NewUploadHandler(log logger.Logger, uploadSvc service.UploadService) *UploadHandler {
	return &UploadHandler{
		log:       log,
		uploadSvc: uploadSvc,
	}
}

func (h *UploadHandler) RegisterRoutes(e *gin.Engine) {
	ug := e.Group("/user/avatar-upload")
	ug.POST("/init", ginx.WrapBodyAndClaims(h.AvatarInit))
	ug.POST("/callback", ginx.WrapBody(h.AvatarCallback))

	fg := e.Group("/file/upload")
	fg.POST("/init", ginx.WrapBodyAndClaims(h.FileInit))
	fg.POST("/callback", ginx.WrapBody(h.FileCallback))
}

// AvatarMetaReq 大小和类型交给校验策略，这里不做 binding
type AvatarMetaReq struct {
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
	MD5      string `json:"md5" binding:"omitempty,max=64"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
}

type FileMetaReq struct {
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
	MD5      string `json:"md5" binding:"omitempty,max=64"`
	FileName string `json:"fileName" binding:"omitempty,max=255"`
	// 会拼进对象名里
	FileType string `json:"fileType" binding:"omitempty,max=32,alphanum"`
}

// CallbackReq 对象存储上传完成之后回调的请求体
type CallbackReq struct {
	AccessKeyID string `json:"accessKeyId"`
	BucketName  string `json:"bucketName"`
}

type CredentialVo struct {
	AccessKeyID      string    `json:"accessKeyId"`
	AccessKeySecret  string    `json:"accessKeySecret"`
	SecurityToken    string    `json:"securityToken"`
	Expiration       time.Time `json:"expiration"`
	BucketName       string    `json:"bucketName"`
	Region           string    `json:"region"`
	Endpoint         string    `json:"endpoint"`
	ObjectPath       string    `json:"objectPath"`
	MaxFileSize      int64     `json:"maxFileSize"`
	AllowedFileTypes []string  `json:"allowedFileTypes"`
}

type CallbackVo struct {
	Username   string `json:"username"`
	ObjectPath string `json:"objectPath"`
}

func (h *UploadHandler) AvatarInit(ctx *gin.Context, req AvatarMetaReq, uc jwtware.UserClaims) (ginx.Result, error) {
	return h.initUpload(ctx, uc, domain.CategoryAvatar, domain.FileMeta{
		MimeType: req.MimeType,
		FileSize: req.FileSize,
		MD5:      req.MD5,
		Width:    req.Width,
		Height:   req.Height,
	}, avatarCodes)
}

func (h *UploadHandler) FileInit(ctx *gin.Context, req FileMetaReq, uc jwtware.UserClaims) (ginx.Result, error) {
	return h.initUpload(ctx, uc, domain.CategoryFile, domain.FileMeta{
		MimeType: req.MimeType,
		FileSize: req.FileSize,
		MD5:      req.MD5,
		FileName: req.FileName,
		FileType: req.FileType,
	}, fileCodes)
}

func (h *UploadHandler) AvatarCallback(ctx *gin.Context, req CallbackReq) (ginx.Result, error) {
	return h.callback(ctx, req, domain.CategoryAvatar, avatarCodes)
}

func (h *UploadHandler) FileCallback(ctx *gin.Context, req CallbackReq) (ginx.Result, error) {
	return h.callback(ctx, req, domain.CategoryFile, fileCodes)
}

func (h *UploadHandler) initUpload(ctx *gin.Context, uc jwtware.UserClaims, category domain.Category,
	meta domain.FileMeta, codes uploadCodes) (ginx.Result, error) {
	cred, err := h.uploadSvc.Init(ctx.Request.Context(), domain.Identity{Uid: uc.Uid, Username: uc.Username}, category, meta)
	var verr *strategy.ValidationError
	switch {
	case err == nil:
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "获取上传凭证成功",
			Data: CredentialVo{
				AccessKeyID:      cred.AccessKeyID,
				AccessKeySecret:  cred.AccessKeySecret,
				SecurityToken:    cred.SecurityToken,
				Expiration:       cred.Expiration,
				BucketName:       cred.Bucket,
				Region:           cred.Region,
				Endpoint:         cred.Endpoint,
				ObjectPath:       cred.ObjectPath,
				MaxFileSize:      cred.MaxFileSize,
				AllowedFileTypes: cred.AllowedTypes,
			},
		}, nil
	case errors.As(err, &verr):
		return ginx.Result{
			Code: codes.validationFailed,
			Msg:  verr.Msg,
		}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return ginx.Result{
			Code: codes.notFound,
			Msg:  "用户不存在",
		}, nil
	case errors.Is(err, service.ErrForbidden):
		return ginx.Result{
			Code: codes.forbidden,
			Msg:  "无权操作",
		}, err
	case errors.Is(err, service.ErrCredentialUnavailable):
		return ginx.Result{
			Code: codes.credentialUnavailable,
			Msg:  "获取上传凭证失败，请稍后重试",
		}, err
	default:
		return ginx.Result{
			Code: codes.internal,
			Msg:  "系统错误",
		}, err
	}
}

func (h *UploadHandler) callback(ctx *gin.Context, req CallbackReq, category domain.Category,
	codes uploadCodes) (ginx.Result, error) {
	if req.AccessKeyID == "" {
		return ginx.Result{
			Code: codes.invalidInput,
			Msg:  "缺少 accessKeyId",
		}, nil
	}
	entry, err := h.uploadSvc.Callback(ctx.Request.Context(), category, req.AccessKeyID, req.BucketName)
	switch {
	case err == nil:
		h.log.Info(ctx, "上传回调处理完成",
			logger.String("category", string(category)),
			logger.String("username", entry.Username),
			logger.String("object_path", entry.ObjectPath))
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "上传成功",
			Data: CallbackVo{Username: entry.Username, ObjectPath: entry.ObjectPath},
		}, nil
	case errors.Is(err, service.ErrUploadNotFound):
		return ginx.Result{
			Code: codes.notFound,
			Msg:  "上传记录不存在或者已经过期",
		}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return ginx.Result{
			Code: codes.notFound,
			Msg:  "用户不存在",
		}, err
	case errors.Is(err, service.ErrBucketMismatch), errors.Is(err, service.ErrCategoryMismatch):
		return ginx.Result{
			Code: codes.forbidden,
			Msg:  "上传信息与记录不一致",
		}, err
	default:
		return ginx.Result{
			Code: codes.internal,
			Msg:  "系统错误",
		}, err
	}
}
