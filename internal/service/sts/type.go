package sts

import (
	"context"
	"time"
)

// Credential 身份服务签发的临时凭证
type Credential struct {
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
	Expiration      time.Time
}

// Service 向云厂商的身份服务申请临时凭证。只调用一次，不重试
//
//go:generate mockgen -source=./type.go -package=stsmocks -destination=./mocks/sts.mock.go Service
type Service interface {
	AssumeRole(ctx context.Context, policy string, sessionName string, duration time.Duration) (Credential, error)
}
