package errs

// 业务码的格式是 类别 + 两位模块码 + 三位序号，HTTP 状态码始终是 200

// User 部分，模块代码使用 01
const (
	// UserInvalidInput 用户相关的 API 参数不对
	UserInvalidInput = 401001
	// UserInternalServerError 用户模块系统内部错误
	UserInternalServerError = 501001

	// UserInvalidOrPassword 账号或者密码不对
	UserInvalidOrPassword = 401002
	// UserDuplicateEmail 邮箱已注册
	UserDuplicateEmail = 401003
	// UserCaptchaInvalid 图形验证码错误或者过期
	UserCaptchaInvalid = 401004
	// UserNothingToUpdate 资料没有变化
	UserNothingToUpdate = 401005
	// UserUnauthorized 登录过期
	UserUnauthorized = 401006
	// UserNotFound 用户不存在
	UserNotFound = 404001
)
