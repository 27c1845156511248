package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/eventistan/internal/logger"
)

// BookingConsumer listens to the booking queue and appends one line per
// confirmed booking to <dir>/booking.log.
type BookingConsumer struct {
	url   string
	queue string
	dir   string
}

func NewBookingConsumer(url, queue, dir string) *BookingConsumer {
	return &BookingConsumer{url: url, queue: queue, dir: dir}
}

// Run connects to RabbitMQ, declares the queue (durable), and consumes
// messages.  It keeps reconnecting with exponential backoff and only
// returns once ctx is cancelled.  A message that cannot be handled is
// rejected without requeue so the loop keeps moving.
func (c *BookingConsumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			logger.Warn(ctx, "booking-consumer: failed to dial broker",
				logger.ErrorF(err), logger.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return nil
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn(ctx, "booking-consumer: consume loop ended, reconnecting", logger.ErrorF(err))
		if !sleep(ctx, 2*time.Second) {
			return nil
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *BookingConsumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		logger.Warn(ctx, "booking-consumer: set QoS failed", logger.ErrorF(err))
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.Handle(d.Body); err != nil {
			logger.Error(ctx, "booking-consumer: handle message failed", logger.ErrorF(err))
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// Handle decodes one message and appends it to the booking log.
func (c *BookingConsumer) Handle(body []byte) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.BookingID == "" {
		return errors.New("message without booking_id")
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.dir, err)
	}
	f, err := os.OpenFile(filepath.Join(c.dir, "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLine renders ev as a single human-friendly log line.
func FormatLine(ev BookingConfirmedEvent) string {
	return fmt.Sprintf("[%s] Booking confirmed | booking_id=%s | ticket=%s | event_id=%s | event=%q | date=%s %s | venue=%q | seats=%d | total=Rs. %s | payment=%s/%s\n",
		ev.ConfirmedAt, ev.BookingID, ev.TicketNumber, ev.EventID, ev.EventTitle, ev.EventDate, ev.EventTime,
		ev.Venue, ev.Seats, ev.TotalAmount, ev.PaymentMethod, ev.PaymentStatus)
}
