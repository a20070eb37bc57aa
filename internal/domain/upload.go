package domain

import "time"

// Category 上传的文件分类，决定了校验策略、路径前缀和回调之后怎么落库
type Category string

const (
	CategoryAvatar Category = "avatar"
	CategoryFile   Category = "file"
)

func (c Category) Valid() bool {
	return c == CategoryAvatar || c == CategoryFile
}

// FileMeta 客户端上传前报上来的元数据
type FileMeta struct {
	MimeType string
	FileSize int64
	// 宽高只有头像会传，nil 表示没传
	Width  *int
	Height *int
	// 业务上的文件类型，例如 video，会用作对象名前缀
	FileType string
	FileName string
	MD5      string
}

// UploadCacheEntry 签发凭证时写入，回调的时候按 AccessKeyId 取出来核对，用完即删
type UploadCacheEntry struct {
	Username       string   `json:"username"`
	ObjectPath     string   `json:"objectPath"`
	ExpectedBucket string   `json:"expectedBucket"`
	UploadTime     int64    `json:"uploadTime"`
	Category       Category `json:"category"`
	FileType       string   `json:"fileType,omitempty"`
}

// TemporaryCredential 返回给客户端直传用的 STS 凭证
type TemporaryCredential struct {
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
	Expiration      time.Time
	Bucket          string
	Region          string
	Endpoint        string
	ObjectPath      string
	MaxFileSize     int64
	AllowedTypes    []string
}

// FileRecord 普通文件上传完成之后的登记记录
type FileRecord struct {
	ID         int64
	Username   string
	ObjectPath string
	Bucket     string
	FileType   string
	Ctime      time.Time
}
