package kafka

import (
	"fmt"
	"strings"

	"dispatch-service/src/pkg/log"

	"github.com/IBM/sarama"
)

// Producer is the publishing surface the messaging gateways depend on.
type Producer interface {
	Publish(topic string, key []byte, value []byte) error
	Close() error
}

type Config struct {
	Brokers  []string
	Username string
	Password string
	AppName  string
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

// NewProducer builds a sarama sync producer. Sync so a failed publish is
// reported to the caller instead of dropped.
func NewProducer(cfg Config, logger log.Log) (Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = cfg.AppName
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Retry.Max = 3

	if cfg.Username != "" {
		saramaCfg.Net.SASL.Enable = true
		saramaCfg.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		saramaCfg.Net.SASL.User = cfg.Username
		saramaCfg.Net.SASL.Password = cfg.Password
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		logger.Error("kafka", fmt.Sprintf("failed to create producer: %v", err), "NewProducer", strings.Join(cfg.Brokers, ","))
		return nil, err
	}

	return &syncProducer{producer: producer, log: logger}, nil
}

func (p *syncProducer) Publish(topic string, key []byte, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.Error("kafka", fmt.Sprintf("failed to publish to %s: %v", topic, err), "Publish", "")
		return err
	}

	p.log.Info("kafka", fmt.Sprintf("published to %s partition=%d offset=%d", topic, partition, offset), "Publish", "")
	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
