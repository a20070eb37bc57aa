package ginx

// Result 统一的响应体，HTTP 状态码恒为 200，业务状态放在 Code 里
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}
