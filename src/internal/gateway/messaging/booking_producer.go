package messaging

import (
	"dispatch-service/src/internal/model"
	"dispatch-service/src/pkg/kafka"
	"dispatch-service/src/pkg/log"
)

type BookingProducer struct {
	CreatedProducer    Producer[*model.BookingEvent]
	TransitionProducer Producer[*model.BookingEvent]
}

func NewBookingProducer(producer kafka.Producer, log log.Log) *BookingProducer {
	return &BookingProducer{
		CreatedProducer: Producer[*model.BookingEvent]{
			Producer: producer,
			Topic:    "booking-created",
			Log:      log,
		},
		TransitionProducer: Producer[*model.BookingEvent]{
			Producer: producer,
			Topic:    "booking-status-changed",
			Log:      log,
		},
	}
}

func (p *BookingProducer) SendCreated(event *model.BookingEvent) error {
	return p.CreatedProducer.Send(event)
}

func (p *BookingProducer) SendTransition(event *model.BookingEvent) error {
	return p.TransitionProducer.Send(event)
}
