package web

import (
	"errors"
	"net/http"

	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/errs"
	jwtware "github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	avatarStatusSuccess = "success"
	avatarStatusEmpty   = "empty"
)

type UserHandler struct {
	log     logger.Logger
	userSvc service.UserService
}

func NewUserHandler(log logger.Logger, userSvc service.UserService) *UserHandler {
	return &UserHandler{
		log:     log,
		userSvc: userSvc,
	}
}

func (u *UserHandler) RegisterRoutes(e *gin.Engine) {
	g := e.Group("/user")
	g.GET("/get-profile", ginx.WrapClaims(u.Profile))
	g.POST("/update-profile", ginx.WrapBodyAndClaims(u.UpdateProfile))
	g.GET("/fetch-avatar", ginx.WrapClaims(u.FetchAvatar))
}

type ProfileVo struct {
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	Phone     string `json:"phone"`
}

func (u *UserHandler) Profile(ctx *gin.Context, uc jwtware.UserClaims) (ginx.Result, error) {
	p, err := u.userSvc.Profile(ctx.Request.Context(), uc.Username)
	switch {
	case err == nil:
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "获取用户信息成功",
			Data: ProfileVo{
				Email:     p.Email,
				Nickname:  p.Nickname,
				AvatarURL: p.AvatarURL,
				Phone:     p.Phone,
			},
		}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return ginx.Result{
			Code: errs.UserNotFound,
			Msg:  "用户不存在",
		}, nil
	default:
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
}

// UpdateProfileReq 只有昵称和手机号可以改，不传或者空字符串表示不改
type UpdateProfileReq struct {
	Nickname string `json:"nickname" binding:"omitempty,max=32"`
	Phone    string `json:"phone" binding:"omitempty,numeric,max=20"`
}

func (u *UserHandler) UpdateProfile(ctx *gin.Context, req UpdateProfileReq, uc jwtware.UserClaims) (ginx.Result, error) {
	err := u.userSvc.UpdateProfile(ctx.Request.Context(), uc.Username, req.Nickname, req.Phone)
	switch {
	case err == nil:
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "更新用户信息成功",
		}, nil
	case errors.Is(err, service.ErrNothingToUpdate):
		return ginx.Result{
			Code: errs.UserNothingToUpdate,
			Msg:  "没有需要更新的信息",
		}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return ginx.Result{
			Code: errs.UserNotFound,
			Msg:  "用户不存在",
		}, nil
	default:
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
}

type AvatarVo struct {
	AvatarURL string `json:"avatarUrl"`
	Status    string `json:"status"`
}

func (u *UserHandler) FetchAvatar(ctx *gin.Context, uc jwtware.UserClaims) (ginx.Result, error) {
	url, err := u.userSvc.FetchAvatar(ctx.Request.Context(), uc.Username)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return ginx.Result{
			Code: errs.UserNotFound,
			Msg:  "用户不存在",
		}, nil
	case err != nil:
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
	if url == "" {
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "用户还没有上传头像",
			Data: AvatarVo{Status: avatarStatusEmpty},
		}, nil
	}
	return ginx.Result{
		Code: http.StatusOK,
		Msg:  "获取头像成功",
		Data: AvatarVo{AvatarURL: url, Status: avatarStatusSuccess},
	}, nil
}
