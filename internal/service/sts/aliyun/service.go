package aliyun

import (
	"context"
	"fmt"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"

	"github.com/aliyun/alibaba-cloud-sdk-go/sdk/requests"
	aliyunsts "github.com/aliyun/alibaba-cloud-sdk-go/services/sts"
)

// Client 只用到 AssumeRole，*aliyunsts.Client 满足这个接口
type Client interface {
	AssumeRole(request *aliyunsts.AssumeRoleRequest) (*aliyunsts.AssumeRoleResponse, error)
}

type Config struct {
	RoleArn string
	// STS 接入点，例如 sts.cn-guangzhou.aliyuncs.com，为空用 SDK 默认的
	Endpoint string
}

type Service struct {
	client Client
	cfg    Config
	now    func() time.Time
}

var _ sts.Service = (*Service)(nil)

func NewService(client Client, cfg Config) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *Service) AssumeRole(ctx context.Context, policy string, sessionName string, duration time.Duration) (sts.Credential, error) {
	// SDK 不接受 ctx，调用前至少看一眼有没有被取消
	if err := ctx.Err(); err != nil {
		return sts.Credential{}, err
	}
	req := aliyunsts.CreateAssumeRoleRequest()
	req.Scheme = "https"
	if s.cfg.Endpoint != "" {
		req.Domain = s.cfg.Endpoint
	}
	req.RoleArn = s.cfg.RoleArn
	req.RoleSessionName = sessionName
	req.Policy = policy
	req.DurationSeconds = requests.NewInteger(int(duration.Seconds()))

	resp, err := s.client.AssumeRole(req)
	if err != nil {
		return sts.Credential{}, fmt.Errorf("调用 STS AssumeRole 失败: %w", err)
	}
	c := resp.Credentials
	if c.AccessKeyId == "" {
		return sts.Credential{}, fmt.Errorf("STS 返回了空凭证, request id: %s", resp.RequestId)
	}
	exp, err := time.Parse(time.RFC3339, c.Expiration)
	if err != nil {
		exp = s.now().Add(duration)
	}
	return sts.Credential{
		AccessKeyID:     c.AccessKeyId,
		AccessKeySecret: c.AccessKeySecret,
		SecurityToken:   c.SecurityToken,
		Expiration:      exp,
	}, nil
}
