package mail

import (
	"context"
	"strings"

	"github.com/ab-jewelery/storefront/backend/internal/config"
	"github.com/ab-jewelery/storefront/backend/internal/domain"
)

// Notifier 投递一封已经渲染好的邮件，超时和取消策略由具体实现决定
type Notifier interface {
	Send(ctx context.Context, payload *domain.NotificationPayload) error
}

// NewNotifier 根据 EMAIL_SERVICE 选择邮件通道
func NewNotifier(ctx context.Context, cfg *config.Config) (Notifier, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.Email.Service), ServiceSES) {
		client, err := NewSESClient(ctx, cfg.Email.SES.Region)
		if err != nil {
			return nil, err
		}
		return NewSESNotifier(client), nil
	}

	return NewSMTPNotifier(cfg)
}
