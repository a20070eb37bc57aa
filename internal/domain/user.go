package domain

import "time"

type User struct {
	ID int64
	// 注册时生成，邮箱前缀加随机串，全局唯一
	Username string
	Email    string
	Password string
	Nickname string
	Phone    string
	// 对象存储里的路径，以 "/" 开头
	Avatar string
	Ctime  time.Time
}

// UserProfile 对外展示的资料，只有 Nickname 和 Phone 允许用户修改
type UserProfile struct {
	Email     string
	Nickname  string
	AvatarURL string
	Phone     string
}

// Identity 从 token 里解析出来的当前用户
type Identity struct {
	Uid      int64
	Username string
}
