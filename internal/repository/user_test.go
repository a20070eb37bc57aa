package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/cache"
	cachemocks "github.com/Deepfake2025/Deepfake-rear/internal/repository/cache/mocks"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"
	daomocks "github.com/Deepfake2025/Deepfake-rear/internal/repository/dao/mocks"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedUserRepository_FindByUsername(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(time.Now().UnixMilli())

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache)
		wantErr  error
		wantUser domain.User
	}{
		{
			name: "cache hit",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{
					ID:       1,
					Username: "alice_1a2b3c4d",
					Nickname: "新用户",
				}, nil)
				return d, c
			},
			wantUser: domain.User{ID: 1, Username: "alice_1a2b3c4d", Nickname: "新用户"},
		},
		{
			name: "cache miss, load from db",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{}, cache.ErrKeyNotExist)
				d.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(dao.User{
					ID:       1,
					Username: "alice_1a2b3c4d",
					Email:    "alice@example.com",
					Avatar:   "/avatars/a.png",
					Ctime:    now.UnixMilli(),
				}, nil)
				c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				return d, c
			},
			wantUser: domain.User{
				ID:       1,
				Username: "alice_1a2b3c4d",
				Email:    "alice@example.com",
				Avatar:   "/avatars/a.png",
				Ctime:    now,
			},
		},
		{
			name: "user not found",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{}, cache.ErrKeyNotExist)
				d.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(dao.User{}, dao.ErrRecordNotFound)
				return d, c
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "redis error, no db fallback",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{}, errors.New("redis error"))
				return d, c
			},
			wantErr: errors.New("redis error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d, c := tc.mock(ctrl)
			repo := NewCachedUserRepository(d, c, logger.NewNopLogger())
			u, err := repo.FindByUsername(context.Background(), "alice_1a2b3c4d")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestCachedUserRepository_UpdateAvatar(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache)
		wantErr error
	}{
		{
			name: "success",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				d.EXPECT().UpdateAvatar(gomock.Any(), "alice_1a2b3c4d", "/avatars/a.png").Return(nil)
				c.EXPECT().Delete(gomock.Any(), "alice_1a2b3c4d").Return(nil)
				return d, c
			},
		},
		{
			name: "db error keeps cache",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				d.EXPECT().UpdateAvatar(gomock.Any(), "alice_1a2b3c4d", "/avatars/a.png").Return(errors.New("db error"))
				return d, c
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d, c := tc.mock(ctrl)
			repo := NewCachedUserRepository(d, c, logger.NewNopLogger())
			err := repo.UpdateAvatar(context.Background(), "alice_1a2b3c4d", "/avatars/a.png")
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestCachedUserRepository_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := daomocks.NewMockUserDAO(ctrl)
	c := cachemocks.NewMockUserCache(ctrl)
	d.EXPECT().UpdateProfile(gomock.Any(), dao.User{Username: "alice_1a2b3c4d", Phone: "13800000000"}).Return(nil)
	c.EXPECT().Delete(gomock.Any(), "alice_1a2b3c4d").Return(nil)

	repo := NewCachedUserRepository(d, c, logger.NewNopLogger())
	err := repo.UpdateProfile(context.Background(), domain.User{Username: "alice_1a2b3c4d", Phone: "13800000000"})
	assert.NoError(t, err)
}
