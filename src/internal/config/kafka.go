package config

import (
	"dispatch-service/src/pkg/kafka"
	"dispatch-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaProducer(v *viper.Viper, logger log.Log) kafka.Producer {
	if !v.GetBool("kafka.producer.enabled") {
		logger.Info("kafka-config", "kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:  v.GetStringSlice("kafka.brokers"),
		Username: v.GetString("kafka.username"),
		Password: v.GetString("kafka.password"),
		AppName:  v.GetString("app.name"),
	}, logger)
	if err != nil {
		panic(err)
	}
	return producer
}
