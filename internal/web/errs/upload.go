package errs

// Upload 部分是头像上传，模块代码使用 02
const (
	UploadInvalidInput        = 402001
	UploadValidationFailed    = 402002
	UploadNotFound            = 402003
	UploadForbidden           = 402004
	UploadInternalServerError = 502001
	// UploadCredentialUnavailable 临时凭证服务不可用，客户端稍后重试
	UploadCredentialUnavailable = 502002
)
