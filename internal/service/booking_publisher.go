// Package service holds adapters that connect the booking flow to outside
// infrastructure.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/eventistan/internal/logger"
	"github.com/iliyamo/eventistan/internal/model"
	"github.com/iliyamo/eventistan/internal/queue"
)

// BookingPublisher publishes booking.confirmed messages to RabbitMQ.  It
// dials per message, so a broker outage never outlives the request that
// hit it.
type BookingPublisher struct {
	url   string
	queue string
}

func NewBookingPublisher(url, queueName string) *BookingPublisher {
	return &BookingPublisher{url: url, queue: queueName}
}

// BookingConfirmed publishes a persistent message for b.  Errors are
// logged and returned so the caller can choose to ignore them.
func (p *BookingPublisher) BookingConfirmed(ctx context.Context, b model.Booking, e model.Event) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		logger.Warn(ctx, "rabbitmq: dial failed", logger.ErrorF(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Warn(ctx, "rabbitmq: channel open failed", logger.ErrorF(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		logger.Warn(ctx, "rabbitmq: queue declare failed", logger.ErrorF(err))
		return err
	}

	body, err := json.Marshal(queue.NewBookingConfirmedEvent(b, e))
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    b.ID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		logger.Warn(ctx, "rabbitmq: publish failed", logger.ErrorF(err))
		return err
	}
	logger.Debug(ctx, "rabbitmq: booking published", logger.String("booking_id", b.ID))
	return nil
}
