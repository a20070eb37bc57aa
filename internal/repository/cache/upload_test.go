package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisUploadCache_Set(t *testing.T) {
	t.Parallel()
	entry := domain.UploadCacheEntry{
		Username:       "alice_1a2b3c4d",
		ObjectPath:     "/avatars/avatar-alice_1a2b3c4d-9f8e7d6c.png",
		ExpectedBucket: "deepfake",
		UploadTime:     1700000000000,
		Category:       domain.CategoryAvatar,
	}
	data, err := json.MarshalToString(entry)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		mock    func(mock redismock.ClientMock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectSet("upload:sts:STS.abc", data, 2*time.Hour).SetVal("OK")
			},
		},
		{
			name: "redis error",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectSet("upload:sts:STS.abc", data, 2*time.Hour).SetErr(errors.New("redis error"))
			},
			wantErr: errors.New("redis error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := redismock.NewClientMock()
			tc.mock(mock)
			err := NewRedisUploadCache(db).Set(context.Background(), "STS.abc", entry, 2*time.Hour)
			assert.Equal(t, tc.wantErr, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisUploadCache_Get(t *testing.T) {
	t.Parallel()
	entry := domain.UploadCacheEntry{
		Username:       "alice_1a2b3c4d",
		ObjectPath:     "/files/video-alice_1a2b3c4d-9f8e7d6c.mp4",
		ExpectedBucket: "deepfake",
		UploadTime:     1700000000000,
		Category:       domain.CategoryFile,
		FileType:       "video",
	}
	data, err := json.MarshalToString(entry)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		mock      func(mock redismock.ClientMock)
		wantEntry domain.UploadCacheEntry
		wantErr   error
	}{
		{
			name: "success",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectGet("upload:sts:STS.abc").SetVal(data)
			},
			wantEntry: entry,
		},
		{
			// 过期之后 redis 里就没有了
			name: "expired",
			mock: func(mock redismock.ClientMock) {
				mock.ExpectGet("upload:sts:STS.abc").RedisNil()
			},
			wantErr: ErrKeyNotExist,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := redismock.NewClientMock()
			tc.mock(mock)
			got, err := NewRedisUploadCache(db).Get(context.Background(), "STS.abc")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantEntry, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisUploadCache_Delete(t *testing.T) {
	t.Parallel()
	db, mock := redismock.NewClientMock()
	mock.ExpectDel("upload:sts:STS.abc").SetVal(1)
	assert.NoError(t, NewRedisUploadCache(db).Delete(context.Background(), "STS.abc"))
	require.NoError(t, mock.ExpectationsWereMet())
}
