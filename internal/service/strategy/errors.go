package strategy

import "errors"

var (
	ErrInvalidSize      = errors.New("文件大小不合法")
	ErrEmptyType        = errors.New("文件类型为空")
	ErrUnsupportedType  = errors.New("文件类型不支持")
	ErrInvalidDimension = errors.New("图片尺寸不合法")
	ErrUnknownCategory  = errors.New("未知的文件分类")
)

// ValidationError 元数据校验失败，Msg 直接展示给用户，Kind 是上面几个哨兵错误之一
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, msg string) error {
	return &ValidationError{Kind: kind, Msg: msg}
}
