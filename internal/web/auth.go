package web

import (
	"errors"
	"net/http"

	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/errs"
	jwtware "github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"
	"github.com/Deepfake2025/Deepfake-rear/pkg/captcha"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	regexp "github.com/dlclark/regexp2"
	"github.com/gin-gonic/gin"
)

const (
	emailRegexPattern = "(?i)^[A-Z0-9_!#$%&'*+/=?`{|}~^.-]+@[A-Z0-9.-]+$"
	// 至少 8 位，字母和数字都要有
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,64}$`
)

type AuthConfig struct {
	// CaptchaEnabled 注册时是否必须带图形验证码
	CaptchaEnabled bool
}

type AuthHandler struct {
	log              logger.Logger
	userSvc          service.UserService
	captchaSvc       captcha.Service
	jwtHdl           jwtware.Handler
	cfg              AuthConfig
	emailRegexExp    *regexp.Regexp
	passwordRegexExp *regexp.Regexp
}

func NewAuthHandler(log logger.Logger,
	userSvc service.UserService,
	captchaSvc captcha.Service,
	jwtHdl jwtware.Handler,
	cfg AuthConfig) *AuthHandler {
	return &AuthHandler{
		log:              log,
		userSvc:          userSvc,
		captchaSvc:       captchaSvc,
		jwtHdl:           jwtHdl,
		cfg:              cfg,
		emailRegexExp:    regexp.MustCompile(emailRegexPattern, regexp.None),
		passwordRegexExp: regexp.MustCompile(passwordRegexPattern, regexp.None),
	}
}

func (h *AuthHandler) RegisterRoutes(e *gin.Engine) {
	g := e.Group("/auth")
	g.POST("/register", ginx.WrapBody(h.Register))
	g.POST("/login", ginx.WrapBody(h.Login))
	g.POST("/logout", ginx.Wrap(h.Logout))
	g.POST("/refresh_token", ginx.Wrap(h.RefreshToken))
	g.GET("/captcha", ginx.Wrap(h.Captcha))
}

type RegisterReq struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captchaId"`
	CaptchaCode string `json:"captchaCode"`
}

type RegisterVo struct {
	Username string `json:"username"`
}

func (h *AuthHandler) Register(ctx *gin.Context, req RegisterReq) (ginx.Result, error) {
	isEmail, err := h.emailRegexExp.MatchString(req.Email)
	if err != nil {
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
	if !isEmail {
		return ginx.Result{
			Code: errs.UserInvalidInput,
			Msg:  "邮箱格式错误",
		}, nil
	}
	isPassword, err := h.passwordRegexExp.MatchString(req.Password)
	if err != nil {
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
	if !isPassword {
		return ginx.Result{
			Code: errs.UserInvalidInput,
			Msg:  "密码必须同时包含字母和数字，并且长度在 8 到 64 位之间",
		}, nil
	}
	if h.cfg.CaptchaEnabled && !h.captchaSvc.Verify(ctx.Request.Context(), req.CaptchaID, req.CaptchaCode) {
		return ginx.Result{
			Code: errs.UserCaptchaInvalid,
			Msg:  "验证码错误或已过期",
		}, nil
	}

	u, err := h.userSvc.Signup(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return ginx.Result{
			Code: http.StatusCreated,
			Msg:  "注册成功",
			Data: RegisterVo{Username: u.Username},
		}, nil
	case errors.Is(err, service.ErrDuplicateEmail):
		return ginx.Result{
			Code: errs.UserDuplicateEmail,
			Msg:  "邮箱已被注册",
		}, nil
	default:
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginVo struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

func (h *AuthHandler) Login(ctx *gin.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		err = h.jwtHdl.SetLoginToken(ctx, u.ID, u.Username)
		if err != nil {
			return ginx.Result{
				Code: errs.UserInternalServerError,
				Msg:  "系统错误",
			}, err
		}
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "登录成功",
			Data: LoginVo{Username: u.Username, Nickname: u.Nickname},
		}, nil
	case errors.Is(err, service.ErrInvalidUserOrPassword):
		return ginx.Result{
			Code: errs.UserInvalidOrPassword,
			Msg:  "邮箱或者密码错误",
		}, nil
	default:
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
}

// Logout 不走登录校验，短 token 过期了就退回到长 token 上取 ssid
func (h *AuthHandler) Logout(ctx *gin.Context) (ginx.Result, error) {
	ssid := h.sessionID(ctx)
	if ssid == "" {
		return ginx.Result{
			Code: http.StatusOK,
			Msg:  "退出登录成功",
		}, nil
	}
	if err := h.jwtHdl.ClearToken(ctx, ssid); err != nil {
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
	return ginx.Result{
		Code: http.StatusOK,
		Msg:  "退出登录成功",
	}, nil
}

// sessionID 两个 token 都解析不了就返回空串
func (h *AuthHandler) sessionID(ctx *gin.Context) string {
	if uc, err := h.jwtHdl.ParseAccessToken(h.jwtHdl.ExtractTokenString(ctx)); err == nil {
		return uc.Ssid
	}
	if rc, err := h.jwtHdl.ParseRefreshToken(ctx.GetHeader("X-Refresh-Token")); err == nil {
		return rc.Ssid
	}
	return ""
}

func (h *AuthHandler) RefreshToken(ctx *gin.Context) (ginx.Result, error) {
	// 长 token 放在 X-Refresh-Token 里
	rc, err := h.jwtHdl.ParseRefreshToken(ctx.GetHeader("X-Refresh-Token"))
	if err != nil {
		return ginx.Result{
			Code: errs.UserUnauthorized,
			Msg:  "登录已过期，请重新登录",
		}, nil
	}

	err = h.jwtHdl.CheckSession(ctx, rc.Ssid)
	switch {
	case errors.Is(err, jwtware.ErrSessionInvalid):
		return ginx.Result{
			Code: errs.UserUnauthorized,
			Msg:  "会话已过期，请重新登录",
		}, nil
	case err != nil:
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}

	if err = h.jwtHdl.SetJWTToken(ctx, rc.Uid, rc.Username, rc.Ssid); err != nil {
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
	return ginx.Result{
		Code: http.StatusOK,
		Msg:  "刷新成功",
	}, nil
}

type CaptchaVo struct {
	CaptchaID string `json:"captchaId"`
	// base64 data uri，前端直接放进 img 标签
	Image string `json:"image"`
}

func (h *AuthHandler) Captcha(ctx *gin.Context) (ginx.Result, error) {
	resp, err := h.captchaSvc.Generate(ctx.Request.Context())
	if err != nil {
		return ginx.Result{
			Code: errs.UserInternalServerError,
			Msg:  "系统错误",
		}, err
	}
	return ginx.Result{
		Code: http.StatusOK,
		Msg:  "获取验证码成功",
		Data: CaptchaVo{CaptchaID: resp.ID, Image: resp.B64S},
	}, nil
}
