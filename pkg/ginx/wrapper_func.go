package ginx

import (
	"errors"
	"net/http"

	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"
	"github.com/Deepfake2025/Deepfake-rear/pkg/validate"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ClaimsKey 鉴权中间件把解析好的 claims 放在这个 key 下面
const ClaimsKey = "user"

var log = logger.NewNopLogger()

func SetLogger(l logger.Logger) {
	log = l
}

// WrapBodyAndClaims bizFn 就是你的业务逻辑
func WrapBodyAndClaims[Req any, Claims any](bizFn func(ctx *gin.Context, req Req, uc Claims) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if !bind(ctx, &req) {
			return
		}

		uc, ok := claims[Claims](ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		res, err := bizFn(ctx, req, uc)
		respond(ctx, res, err)
	}
}

func Wrap(bizFn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := bizFn(ctx)
		respond(ctx, res, err)
	}
}

func WrapBody[Req any](bizFn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if !bind(ctx, &req) {
			return
		}
		res, err := bizFn(ctx, req)
		respond(ctx, res, err)
	}
}

func WrapClaims[Claims any](bizFn func(ctx *gin.Context, uc Claims) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uc, ok := claims[Claims](ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		res, err := bizFn(ctx, uc)
		respond(ctx, res, err)
	}
}

func bind[Req any](ctx *gin.Context, req *Req) bool {
	if err := ctx.ShouldBind(req); err != nil {
		log.Error(ctx, "输入错误", logger.Error(err))
		var verr validator.ValidationErrors
		if errors.As(err, &verr) && validate.Trans != nil {
			ctx.JSON(http.StatusOK, Result{
				Code: http.StatusBadRequest,
				Msg:  "输入参数有误，请检查",
				Data: validate.RemoveTopStruct(verr.Translate(validate.Trans)),
			})
		} else {
			ctx.JSON(http.StatusOK, Result{
				Code: http.StatusBadRequest,
				Msg:  "请求体格式错误",
			})
		}
		return false
	}
	log.Debug(ctx, "输入参数", logger.Field{Key: "req", Val: *req})
	return true
}

func claims[Claims any](ctx *gin.Context) (Claims, bool) {
	var zero Claims
	val, ok := ctx.Get(ClaimsKey)
	if !ok {
		return zero, false
	}
	uc, ok := val.(Claims)
	return uc, ok
}

func respond(ctx *gin.Context, res Result, err error) {
	if err != nil {
		log.Error(ctx, "执行业务逻辑失败", logger.Error(err))
	}
	log.Debug(ctx, "返回响应", logger.Field{Key: "res", Val: res})
	ctx.JSON(http.StatusOK, res)
}
