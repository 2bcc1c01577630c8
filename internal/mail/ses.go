package mail

import (
	"context"
	"fmt"

	"github.com/ab-jewelery/storefront/backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESClient 是 *ses.Client 中用到的部分
type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESNotifier struct {
	client SESClient
}

func NewSESNotifier(client SESClient) *SESNotifier {
	return &SESNotifier{client: client}
}

// NewSESClient 使用 AWS 默认凭据链
func NewSESClient(ctx context.Context, region string) (*ses.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("无法加载 AWS 配置: %w", err)
	}
	return ses.NewFromConfig(awsCfg), nil
}

func (n *SESNotifier) Send(ctx context.Context, payload *domain.NotificationPayload) error {
	input := &ses.SendEmailInput{
		Source: aws.String(payload.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{payload.Recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(payload.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(payload.Body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("SES 邮件发送失败: %w", err)
	}

	return nil
}
