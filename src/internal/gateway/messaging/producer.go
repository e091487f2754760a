package messaging

import (
	"encoding/json"

	"dispatch-service/src/internal/model"
	"dispatch-service/src/pkg/kafka"
	"dispatch-service/src/pkg/log"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() string {
	return p.Topic
}

// Send marshals the event and publishes it keyed by the event id, so all
// events for one booking land on the same partition in order.
func (p *Producer[T]) Send(event T) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	if err := p.Producer.Publish(p.Topic, []byte(event.GetId()), value); err != nil {
		p.Log.Error("gateway/messaging/producer", "error send message", "Send", err.Error())
		return err
	}

	return nil
}
