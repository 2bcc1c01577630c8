package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	netmail "net/mail"
	"strconv"
	"strings"

	"github.com/ab-jewelery/storefront/backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const subjectPrefix = "Order Confirmation - "

type Renderer struct {
	brandName     string
	senderAddress string
	tmpl          *template.Template
}

// NewRenderer 解析订单确认邮件模板，所有插入的字段都会经过 HTML 转义
func NewRenderer(brandName, senderAddress string) (*Renderer, error) {
	tmpl, err := template.New("order_confirmation.html").
		Funcs(template.FuncMap{"price": formatPrice}).
		ParseFS(templateFS, "templates/order_confirmation.html")
	if err != nil {
		return nil, fmt.Errorf("无法解析邮件模板: %w", err)
	}

	return &Renderer{
		brandName:     brandName,
		senderAddress: senderAddress,
		tmpl:          tmpl,
	}, nil
}

func (r *Renderer) Render(req *domain.ConfirmationRequest) (*domain.NotificationPayload, error) {
	data := struct {
		OrderID   string
		Provider  string
		Items     []domain.OrderItem
		BrandName string
	}{
		OrderID:   req.OrderID,
		Provider:  req.Provider,
		Items:     req.Items,
		BrandName: r.brandName,
	}

	var body bytes.Buffer
	if err := r.tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("无法渲染邮件正文: %w", err)
	}

	return &domain.NotificationPayload{
		Sender:    formatSender(r.brandName, r.senderAddress),
		Recipient: req.Email,
		Subject:   subjectPrefix + req.OrderID,
		Body:      body.String(),
	}, nil
}

// 品牌名含有 RFC 5322 特殊字符时需要加引号，否则发件人地址无法解析
func formatSender(name, address string) string {
	if strings.ContainsAny(name, `()<>[]:;@\,."`) {
		return (&netmail.Address{Name: name, Address: address}).String()
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

// 300 -> "300", 99.5 -> "99.5"
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
