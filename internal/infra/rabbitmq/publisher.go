package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"counter-service/internal/logger"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	exchange string

	// amqp channels must not be shared between goroutines.
	mu      sync.Mutex
	channel channel
}

type Message struct {
	Pattern string `json:"pattern"`
	Data    any    `json:"data"`
	ID      string `json:"id,omitempty"`
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, pattern string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := Message{
		Pattern: pattern,
		Data:    data,
		ID:      uuid.NewString(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	logger.Log.Debug("publishing message",
		zap.String("pattern", pattern),
		zap.String("exchange", p.exchange),
		zap.String("id", message.ID),
	)

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		p.exchange,
		pattern,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    message.ID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
