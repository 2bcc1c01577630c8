package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSent     = "sent"
	resultFailed   = "failed"
	resultRejected = "rejected"
)

type metrics struct {
	confirmations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		confirmations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "confirmation_emails_total",
			Help:      "Order confirmation requests by outcome",
		}, []string{"result"}),
	}
}
