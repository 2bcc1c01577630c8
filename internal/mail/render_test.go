package mail

import (
	"strings"
	"testing"

	"github.com/ab-jewelery/storefront/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := NewRenderer("AB Jewelery", "shop@abjewelery.com")
	require.NoError(t, err)

	payload, err := r.Render(&domain.ConfirmationRequest{
		Email:    "a@b.com",
		OrderID:  "ORD1",
		Provider: "Stripe",
		Items:    []domain.OrderItem{{Name: "Ring", Price: 300}},
	})
	require.NoError(t, err)

	assert.Equal(t, "AB Jewelery <shop@abjewelery.com>", payload.Sender)
	assert.Equal(t, "a@b.com", payload.Recipient)
	assert.Equal(t, "Order Confirmation - ORD1", payload.Subject)
	assert.True(t, strings.HasPrefix(payload.Body, "<h2>Thank you for your purchase!</h2>"))
	assert.Contains(t, payload.Body, "Your order <b>ORD1</b> has been successfully placed via Stripe.")
	assert.Contains(t, payload.Body, "<li>Ring - $300</li>")
	assert.Contains(t, payload.Body, "Best regards,<br/>AB Jewelery Team")
}

func TestRender_CustomBrand(t *testing.T) {
	r, err := NewRenderer("Luxe Jewels", "hello@luxe.example")
	require.NoError(t, err)

	payload, err := r.Render(&domain.ConfirmationRequest{Email: "a@b.com", OrderID: "X", Items: []domain.OrderItem{}})
	require.NoError(t, err)

	assert.Equal(t, "Luxe Jewels <hello@luxe.example>", payload.Sender)
	assert.Contains(t, payload.Body, "Luxe Jewels Team")
}

func TestRender_ItemsJoinedInOrder(t *testing.T) {
	r, err := NewRenderer("AB Jewelery", "shop@abjewelery.com")
	require.NoError(t, err)

	payload, err := r.Render(&domain.ConfirmationRequest{
		Email:   "a@b.com",
		OrderID: "ORD2",
		Items: []domain.OrderItem{
			{Name: "Diamond Necklace", Price: 250},
			{Name: "Silver Bracelet", Price: 89.5},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, payload.Body, "<li>Diamond Necklace - $250</li> <li>Silver Bracelet - $89.5</li>")
}

func TestRender_EscapesFields(t *testing.T) {
	r, err := NewRenderer("AB & Co", "shop@abjewelery.com")
	require.NoError(t, err)

	payload, err := r.Render(&domain.ConfirmationRequest{
		Email:    "a@b.com",
		OrderID:  `<b>1</b>`,
		Provider: `"><script>x</script>`,
		Items:    []domain.OrderItem{{Name: "<i>Ring</i>", Price: 1}},
	})
	require.NoError(t, err)

	assert.NotContains(t, payload.Body, "<script>")
	assert.NotContains(t, payload.Body, "<i>Ring</i>")
	assert.Contains(t, payload.Body, "&lt;i&gt;Ring&lt;/i&gt; - $1")
	assert.Contains(t, payload.Body, "AB &amp; Co Team")
	// 主题不是 HTML，保持原样
	assert.Equal(t, "Order Confirmation - <b>1</b>", payload.Subject)
}

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		300:    "300",
		99.5:   "99.5",
		0:      "0",
		0.1:    "0.1",
		1250.0: "1250",
		-5:     "-5",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatPrice(in))
	}
}

func TestFormatSender(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"AB Jewelery", "AB Jewelery <shop@abjewelery.com>"},
		{"AB Jewelery, Inc.", `"AB Jewelery, Inc." <shop@abjewelery.com>`},
		{`The "Ring" Shop`, `"The \"Ring\" Shop" <shop@abjewelery.com>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSender(tt.name, "shop@abjewelery.com"))
		})
	}
}
