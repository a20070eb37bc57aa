package mojocn

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_Verify(t *testing.T) {
	testCases := []struct {
		name   string
		mock   func(mock redismock.ClientMock)
		answer string
		want   bool
	}{
		{
			name: "验证通过",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectGetDel("captcha:abc").SetVal("12345")
			},
			answer: "12345",
			want:   true,
		},
		{
			name: "答案错误",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectGetDel("captcha:abc").SetVal("12345")
			},
			answer: "54321",
			want:   false,
		},
		{
			name: "验证码过期",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectGetDel("captcha:abc").RedisNil()
			},
			answer: "12345",
			want:   false,
		},
		{
			name: "redis 出错",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectGetDel("captcha:abc").SetErr(errors.New("连接断开"))
			},
			answer: "12345",
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tc.mock(mock)
			store := NewRedisStore(db, time.Minute)
			assert.Equal(t, tc.want, store.Verify("abc", tc.answer, true))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestService_GenerateAndVerify(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet(`captcha:.+`, `\d{5}`, time.Minute).SetVal("OK")
	svc := NewService(NewRedisStore(db, time.Minute))

	resp, err := svc.Generate(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, resp.B64S, "data:image/png;base64,")
	assert.False(t, svc.Verify(context.Background(), "", "12345"))
}
