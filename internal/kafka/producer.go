package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// NotificationProducer — интерфейс отправки уведомлений (для подмены моком в тестах).
type NotificationProducer interface {
	SendNotification(ctx context.Context, userID int64, subject, body string)
}

// Producer пишет уведомления в топик Kafka. Доставка best-effort:
// ошибки публикации логируются и не поднимаются к вызывающему;
// гарантии доставки — забота потребителя (notification-service).
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer создаёт продюсер. Если brokers или topic пустые — методы no-op.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

type notificationMessage struct {
	UserID  int64  `json:"user_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendNotification публикует письмо для пользователя. Email по user_id
// резолвит потребитель топика (GET /users/{id} в user-service).
func (p *Producer) SendNotification(ctx context.Context, userID int64, subject, body string) {
	if p.writer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg := notificationMessage{UserID: userID, Subject: subject, Body: body}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("kafka: marshal notification: %v", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: payload}); err != nil {
		log.Printf("kafka: write notification for user %d: %v", userID, err)
	}
}

// Close закрывает writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
