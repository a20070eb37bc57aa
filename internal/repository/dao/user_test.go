package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return gormDB, mock
}

func TestGORMUserDAO_Insert(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(t *testing.T, mock sqlmock.Sqlmock)
		user    User
		wantErr error
	}{
		{
			name: "success",
			user: User{Username: "alice_1a2b3c4d", Email: "alice@example.com", Password: "hash"},
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO .*users.*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "duplicate email",
			user: User{Username: "alice_1a2b3c4d", Email: "alice@example.com", Password: "hash"},
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO .*users.*").
					WillReturnError(&mysql.MySQLError{
						Number:  1062,
						Message: "Duplicate entry 'alice@example.com' for key 'users.idx_users_email'",
					})
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicateEmail,
		},
		{
			name: "duplicate username",
			user: User{Username: "alice_1a2b3c4d", Email: "alice@example.com", Password: "hash"},
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO .*users.*").
					WillReturnError(&mysql.MySQLError{
						Number:  1062,
						Message: "Duplicate entry 'alice_1a2b3c4d' for key 'users.idx_users_username'",
					})
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicateUsername,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gormDB, mock := newMockDB(t)
			tc.mock(t, mock)

			err := NewGORMUserDAO(gormDB).Insert(context.Background(), tc.user)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMUserDAO_FindByUsername(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mock     func(t *testing.T, mock sqlmock.Sqlmock)
		wantUser User
		wantErr  error
	}{
		{
			name: "success",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "nickname", "phone", "avatar", "ctime", "utime"}).
					AddRow(1, "alice_1a2b3c4d", "alice@example.com", "hash", "新用户", "", "/avatars/a.png", 123, 123)
				mock.ExpectQuery("SELECT .* FROM .*users.* WHERE username = \\?.*").
					WillReturnRows(rows)
			},
			wantUser: User{
				ID:       1,
				Username: "alice_1a2b3c4d",
				Email:    "alice@example.com",
				Password: "hash",
				Nickname: "新用户",
				Avatar:   "/avatars/a.png",
				Ctime:    123,
				Utime:    123,
			},
		},
		{
			name: "not found",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM .*users.* WHERE username = \\?.*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: gorm.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gormDB, mock := newMockDB(t)
			tc.mock(t, mock)

			u, err := NewGORMUserDAO(gormDB).FindByUsername(context.Background(), "alice_1a2b3c4d")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMUserDAO_FindByEmail(t *testing.T) {
	t.Parallel()
	gormDB, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password"}).
		AddRow(2, "bob_9f8e7d6c", "bob@example.com", "hash")
	mock.ExpectQuery("SELECT .* FROM .*users.* WHERE email = \\?.*").
		WillReturnRows(rows)

	u, err := NewGORMUserDAO(gormDB).FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob_9f8e7d6c", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMUserDAO_UpdateAvatar(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(t *testing.T, mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE .*users.* SET .*avatar.*=\\?,.*utime.*=\\? WHERE username = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "user missing",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE .*users.*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "db error",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE .*users.*").
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gormDB, mock := newMockDB(t)
			tc.mock(t, mock)

			err := NewGORMUserDAO(gormDB).UpdateAvatar(context.Background(), "alice_1a2b3c4d", "/avatars/a.png")
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMUserDAO_UpdateProfile(t *testing.T) {
	t.Parallel()
	gormDB, mock := newMockDB(t)
	mock.ExpectBegin()
	// 只有非零字段会出现在 SET 里
	mock.ExpectExec("UPDATE .*users.* SET .*nickname.*=\\?,.*utime.*=\\? WHERE username = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewGORMUserDAO(gormDB).UpdateProfile(context.Background(), User{
		Username: "alice_1a2b3c4d",
		Nickname: "爱丽丝",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
