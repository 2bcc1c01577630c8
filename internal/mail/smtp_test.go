package mail

import (
	"testing"
	"time"

	"github.com/ab-jewelery/storefront/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func TestNewSMTPNotifier(t *testing.T) {
	n, err := NewSMTPNotifier(emailConfig("gmail"))
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com", n.host)
	assert.Equal(t, 465, n.port)
	assert.Equal(t, "shop@abjewelery.com", n.username)
	assert.Equal(t, 15*time.Second, n.timeout)
}

func TestNewSMTPNotifier_DefaultTimeout(t *testing.T) {
	cfg := emailConfig("outlook")
	cfg.Email.SMTP.Timeout = 0

	n, err := NewSMTPNotifier(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultSMTPTimeout, n.timeout)
}

func TestSMTPNotifier_ClientOptions(t *testing.T) {
	tests := []struct {
		service  string
		wantAddr string
	}{
		{"gmail", "smtp.gmail.com:465"},
		{"outlook", "smtp-mail.outlook.com:587"},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			n, err := NewSMTPNotifier(emailConfig(tt.service))
			require.NoError(t, err)

			client, err := gomail.NewClient(n.host, n.clientOptions()...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, client.ServerAddr())
		})
	}
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage(&domain.NotificationPayload{
		Sender:    "AB Jewelery <shop@abjewelery.com>",
		Recipient: "a@b.com",
		Subject:   "Order Confirmation - ORD1",
		Body:      "<h2>Thank you for your purchase!</h2>",
	})
	require.NoError(t, err)

	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com"}, recipients)
	assert.Equal(t, []string{"Order Confirmation - ORD1"}, msg.GetGenHeader(gomail.HeaderSubject))
}

// 没有配置 EMAIL_USER 时，发件人地址为空，发送会在连接服务器之前失败
func TestSMTPNotifier_MissingSender(t *testing.T) {
	cfg := emailConfig("gmail")
	cfg.Email.User = ""
	n, err := NewSMTPNotifier(cfg)
	require.NoError(t, err)

	err = n.Send(t.Context(), &domain.NotificationPayload{
		Sender:    "AB Jewelery <>",
		Recipient: "a@b.com",
		Subject:   "Order Confirmation - ORD1",
		Body:      "<p>hi</p>",
	})
	assert.Error(t, err)
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := buildMessage(&domain.NotificationPayload{
		Sender:    "AB Jewelery <shop@abjewelery.com>",
		Recipient: "not an address",
	})
	assert.Error(t, err)
}

// 品牌名带逗号时发件人仍然可以被解析
func TestBuildMessage_BrandWithSpecials(t *testing.T) {
	r, err := NewRenderer("AB Jewelery, Inc.", "shop@abjewelery.com")
	require.NoError(t, err)

	payload, err := r.Render(&domain.ConfirmationRequest{Email: "a@b.com", OrderID: "ORD1", Items: []domain.OrderItem{}})
	require.NoError(t, err)

	msg, err := buildMessage(payload)
	require.NoError(t, err)

	from := msg.GetFrom()
	require.Len(t, from, 1)
	assert.Equal(t, "AB Jewelery, Inc.", from[0].Name)
	assert.Equal(t, "shop@abjewelery.com", from[0].Address)
}
