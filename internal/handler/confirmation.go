package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ab-jewelery/storefront/backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	msgConfirmationSent = "Confirmation email sent"

	errMissingFields   = "Missing fields"
	errInvalidBody     = "Invalid request body"
	errEmailSendFailed = "Email send failed"
)

// confirmationFields 只用于存在性校验，字段可以是任意 JSON 类型。
// null、""、0、false 和缺失的字段都视为不存在
type confirmationFields struct {
	Email   any `json:"email" validate:"required"`
	OrderID any `json:"orderId" validate:"required"`
	Items   any `json:"items" validate:"required"`
}

// SendConfirmationEmail 在支付完成后给顾客发送订单确认邮件，每个请求只尝试发送一次
func (h *Handler) SendConfirmationEmail(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.rejectConfirmation(w, r, errInvalidBody, err)
		return
	}
	// 空请求体按空对象处理
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	// 先检查字段是否存在，再检查类型和 items 的形状
	fields := &confirmationFields{}
	if err := json.Unmarshal(body, fields); err != nil {
		h.rejectConfirmation(w, r, errInvalidBody, err)
		return
	}
	if err := h.validate.Struct(fields); err != nil {
		h.rejectConfirmation(w, r, errMissingFields, err)
		return
	}

	req := &domain.ConfirmationRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		h.rejectConfirmation(w, r, errInvalidBody, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.rejectConfirmation(w, r, errInvalidBody, err)
		return
	}

	payload, err := h.renderer.Render(req)
	if err != nil {
		h.confirmationFailed(w, r, req, err)
		return
	}

	if err := h.notifier.Send(r.Context(), payload); err != nil {
		h.confirmationFailed(w, r, req, err)
		return
	}

	h.metrics.confirmations.WithLabelValues(resultSent).Inc()
	h.successResponse(w, r, msgConfirmationSent)
}

func (h *Handler) rejectConfirmation(w http.ResponseWriter, r *http.Request, msg string, err error) {
	reason := err.Error()
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		reason = validationErrors[0].Translate(h.translator)
	}
	h.log.Debug("订单确认请求无效", "path", r.URL.Path, "reason", reason)

	h.metrics.confirmations.WithLabelValues(resultRejected).Inc()
	h.errorResponse(w, r, http.StatusBadRequest, msg)
}

// 具体原因只写日志，不返回给调用方
func (h *Handler) confirmationFailed(w http.ResponseWriter, r *http.Request, req *domain.ConfirmationRequest, err error) {
	h.log.Error("订单确认邮件发送失败",
		"method", r.Method,
		"path", r.URL.Path,
		"order_id", req.OrderID,
		"error", err,
	)

	h.metrics.confirmations.WithLabelValues(resultFailed).Inc()
	h.errorResponse(w, r, http.StatusInternalServerError, errEmailSendFailed)
}
