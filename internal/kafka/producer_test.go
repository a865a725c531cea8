package kafka_test

import (
	"context"
	"testing"

	"github.com/psds-microservice/grievance-service/internal/kafka"
	"github.com/stretchr/testify/assert"
)

// Без брокеров продюсер молча глотает отправку. Сервис не обязан знать,
// настроена ли Kafka.
func TestProducerNoopWithoutBrokers(t *testing.T) {
	p := kafka.NewProducer(nil, "")
	assert.NotPanics(t, func() {
		p.SendNotification(context.Background(), 5, "Subject", "Body")
	})
	assert.NoError(t, p.Close())
}

func TestProducerNoopWithoutTopic(t *testing.T) {
	p := kafka.NewProducer([]string{"localhost:9092"}, "")
	assert.NotPanics(t, func() {
		p.SendNotification(context.Background(), 5, "Subject", "Body")
	})
	assert.NoError(t, p.Close())
}
