package mail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ab-jewelery/storefront/backend/internal/config"
)

const (
	ServiceSES  = "ses"
	ServiceSMTP = "smtp"

	defaultSMTPPort = 587
)

var ErrUnknownService = errors.New("不支持的邮件服务")

type smtpService struct {
	Host string
	Port int
}

// 常见邮件服务商的 SMTP 地址，465 端口使用隐式 TLS，其余端口强制 STARTTLS
var wellKnownServices = map[string]smtpService{
	"gmail":      {Host: "smtp.gmail.com", Port: 465},
	"outlook":    {Host: "smtp-mail.outlook.com", Port: 587},
	"hotmail":    {Host: "smtp-mail.outlook.com", Port: 587},
	"outlook365": {Host: "smtp.office365.com", Port: 587},
	"yahoo":      {Host: "smtp.mail.yahoo.com", Port: 465},
	"icloud":     {Host: "smtp.mail.me.com", Port: 587},
	"zoho":       {Host: "smtp.zoho.com", Port: 465},
	"sendgrid":   {Host: "smtp.sendgrid.net", Port: 587},
	"mailgun":    {Host: "smtp.mailgun.org", Port: 465},
}

// resolveSMTPService 把 EMAIL_SERVICE 解析为 SMTP 地址，EMAIL_SMTP_HOST 和 EMAIL_SMTP_PORT 可以覆盖预设值
func resolveSMTPService(cfg *config.Config) (smtpService, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Email.Service))

	svc, ok := wellKnownServices[name]
	if name == ServiceSMTP {
		svc, ok = smtpService{Port: defaultSMTPPort}, true
	}
	if !ok {
		return smtpService{}, fmt.Errorf("%w: %q", ErrUnknownService, cfg.Email.Service)
	}

	if cfg.Email.SMTP.Host != "" {
		svc.Host = cfg.Email.SMTP.Host
	}
	if cfg.Email.SMTP.Port != 0 {
		svc.Port = cfg.Email.SMTP.Port
	}

	if svc.Host == "" {
		return smtpService{}, fmt.Errorf("邮件服务 %q 需要设置 EMAIL_SMTP_HOST", cfg.Email.Service)
	}
	if svc.Port <= 0 || svc.Port > 65535 {
		return smtpService{}, fmt.Errorf("无效的 SMTP 端口 %d", svc.Port)
	}

	return svc, nil
}
