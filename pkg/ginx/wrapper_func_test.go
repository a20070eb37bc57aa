package ginx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoReq struct {
	Name string `json:"name" binding:"required"`
}

type echoClaims struct {
	Uid int64
}

func TestWrapBodyAndClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name       string
		body       string
		withClaims bool
		wantStatus int
		wantCode   int
	}{
		{
			name:       "成功",
			body:       `{"name":"alice"}`,
			withClaims: true,
			wantStatus: http.StatusOK,
			wantCode:   http.StatusOK,
		},
		{
			name:       "请求体格式错误",
			body:       `{"name":`,
			withClaims: true,
			wantStatus: http.StatusOK,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "缺少必填字段",
			body:       `{}`,
			withClaims: true,
			wantStatus: http.StatusOK,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "没有登录",
			body:       `{"name":"alice"}`,
			withClaims: false,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.POST("/echo", func(ctx *gin.Context) {
				if tc.withClaims {
					ctx.Set(ClaimsKey, echoClaims{Uid: 7})
				}
			}, WrapBodyAndClaims(func(ctx *gin.Context, req echoReq, uc echoClaims) (Result, error) {
				return Result{Code: http.StatusOK, Msg: req.Name, Data: uc.Uid}, nil
			}))

			req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			var res Result
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}
