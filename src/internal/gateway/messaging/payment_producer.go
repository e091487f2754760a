package messaging

import (
	"dispatch-service/src/internal/model"
	"dispatch-service/src/pkg/kafka"
	"dispatch-service/src/pkg/log"
)

type PaymentProducer struct {
	SettledProducer Producer[*model.PaymentEvent]
}

func NewPaymentProducer(producer kafka.Producer, log log.Log) *PaymentProducer {
	return &PaymentProducer{
		SettledProducer: Producer[*model.PaymentEvent]{
			Producer: producer,
			Topic:    "payment-settled",
			Log:      log,
		},
	}
}

func (p *PaymentProducer) SendSettled(event *model.PaymentEvent) error {
	return p.SettledProducer.Send(event)
}
