package errs

// File 部分是普通文件上传，模块代码使用 03
const (
	FileInvalidInput          = 403001
	FileValidationFailed      = 403002
	FileNotFound              = 403003
	FileForbidden             = 403004
	FileInternalServerError   = 503001
	FileCredentialUnavailable = 503002
)
