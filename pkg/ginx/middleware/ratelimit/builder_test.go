package ratelimit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	limitmocks "github.com/Deepfake2025/Deepfake-rear/pkg/limiter/mocks"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *limitmocks.MockLimiter
		wantCode int
	}{
		{
			name: "放行",
			mock: func(ctrl *gomock.Controller) *limitmocks.MockLimiter {
				l := limitmocks.NewMockLimiter(ctrl)
				l.EXPECT().Limit(gomock.Any(), "ip-limiter:192.0.2.1").Return(false, nil)
				return l
			},
			wantCode: http.StatusOK,
		},
		{
			name: "触发限流",
			mock: func(ctrl *gomock.Controller) *limitmocks.MockLimiter {
				l := limitmocks.NewMockLimiter(ctrl)
				l.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(true, nil)
				return l
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "限流器出错",
			mock: func(ctrl *gomock.Controller) *limitmocks.MockLimiter {
				l := limitmocks.NewMockLimiter(ctrl)
				l.EXPECT().Limit(gomock.Any(), gomock.Any()).Return(false, errors.New("redis 不可用"))
				return l
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			server.Use(NewBuilder(tc.mock(ctrl), logger.NewNopLogger()).Build())
			server.GET("/ping", func(ctx *gin.Context) {
				ctx.String(http.StatusOK, "pong")
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
