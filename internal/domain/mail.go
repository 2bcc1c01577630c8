package domain

// NotificationPayload 是交给 Notifier 投递的一封邮件，只在单次请求内存在
type NotificationPayload struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
