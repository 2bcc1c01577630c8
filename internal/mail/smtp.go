package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/ab-jewelery/storefront/backend/internal/config"
	"github.com/ab-jewelery/storefront/backend/internal/domain"
	gomail "github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 15 * time.Second

type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

func NewSMTPNotifier(cfg *config.Config) (*SMTPNotifier, error) {
	svc, err := resolveSMTPService(cfg)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Email.SMTP.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	return &SMTPNotifier{
		host:     svc.Host,
		port:     svc.Port,
		username: cfg.Email.User,
		password: cfg.Email.Pass,
		timeout:  timeout,
	}, nil
}

// Send 每次发送都新建客户端，连接在发送完成后关闭
func (n *SMTPNotifier) Send(ctx context.Context, payload *domain.NotificationPayload) error {
	msg, err := buildMessage(payload)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(n.host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("无法创建邮件客户端: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("邮件发送失败: %w", err)
	}

	return nil
}

func (n *SMTPNotifier) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(n.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.username),
		gomail.WithPassword(n.password),
		gomail.WithTimeout(n.timeout),
	}
	if n.port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	return opts
}

func buildMessage(payload *domain.NotificationPayload) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(payload.Sender); err != nil {
		return nil, fmt.Errorf("无法设置邮件发件人: %w", err)
	}
	if err := msg.To(payload.Recipient); err != nil {
		return nil, fmt.Errorf("无法设置邮件收件人: %w", err)
	}
	msg.Subject(payload.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, payload.Body)

	return msg, nil
}
