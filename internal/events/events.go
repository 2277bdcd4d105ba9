// Package events publishes domain events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ReservationCreatedQueue = "reservation.created"

type TicketPayload struct {
	ID            int `json:"id"`
	ShowSessionID int `json:"showSessionId"`
	Row           int `json:"row"`
	Seat          int `json:"seat"`
}

type ReservationCreated struct {
	ReservationID int             `json:"reservationId"`
	UserID        int             `json:"userId"`
	Tickets       []TicketPayload `json:"tickets"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type Publisher interface {
	PublishReservationCreated(ctx context.Context, event ReservationCreated) error
	Close() error
}

// AMQPPublisher keeps one connection and channel open for the lifetime of the
// process. Publishing is serialized over the channel.
type AMQPPublisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		ReservationCreatedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, event ReservationCreated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event failed: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, "", ReservationCreatedQueue, false, false, msg)
	if err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return chErr
	}

	return connErr
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationCreated(context.Context, ReservationCreated) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.RWMutex
	events []ReservationCreated

	PublishErr error
}

func (m *MockPublisher) PublishReservationCreated(_ context.Context, event ReservationCreated) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)

	return m.PublishErr
}

func (m *MockPublisher) Close() error {
	return nil
}

func (m *MockPublisher) Published() []ReservationCreated {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]ReservationCreated, len(m.events))
	copy(events, m.events)

	return events
}
