package domain

// 支付完成后前端提交的订单确认请求
type ConfirmationRequest struct {
	Email    string      `json:"email" validate:"required"`
	OrderID  string      `json:"orderId" validate:"required"`
	Provider string      `json:"provider"`
	Items    []OrderItem `json:"items" validate:"required,dive"`
}

// null 元素或缺少 name 的元素会被拒绝，缺少 price 时按 0 处理
type OrderItem struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price"`
}
