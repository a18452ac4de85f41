package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartConsumer connects to RabbitMQ and consumes the booking event
// queues, appending one human-readable line per event to
// logs/booking.log.  It runs a reconnect loop with capped backoff and
// never returns under normal operation; processing errors are logged
// and the offending message rejected without requeueing so the loop
// keeps moving.
func StartConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

// consumeLoop drains both event queues on one connection.  It returns
// when either delivery stream closes, which makes the caller redial.
func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("booking-consumer: set QoS failed: %v", err)
	}

	type source struct {
		name   string
		render func([]byte) (string, error)
	}
	sources := []source{
		{BookingConfirmedQueue, renderConfirmed},
		{BookingCancelledQueue, renderCancelled},
	}

	done := make(chan error, len(sources))
	for _, src := range sources {
		if _, err := ch.QueueDeclare(src.name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", src.name, err)
		}
		msgs, err := ch.Consume(src.name, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("queue consume %s: %w", src.name, err)
		}
		go func(src source, msgs <-chan amqp.Delivery) {
			for d := range msgs {
				line, err := src.render(d.Body)
				if err == nil {
					err = appendLogLine(line)
				}
				if err != nil {
					log.Printf("booking-consumer: handle %s message failed: %v", src.name, err)
					_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
					continue
				}
				_ = d.Ack(false)
			}
			done <- errors.New(src.name + ": deliveries channel closed")
		}(src, msgs)
	}
	return <-done
}

func renderConfirmed(body []byte) (string, error) {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}
	return fmt.Sprintf("%s CONFIRMED booking=%d user=%d show=%d seats=%d amount=%d",
		ev.ConfirmedAt, ev.BookingID, ev.UserID, ev.ShowID, ev.SeatsBooked, ev.AmountCharged), nil
}

func renderCancelled(body []byte) (string, error) {
	var ev BookingCancelledEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}
	return fmt.Sprintf("%s CANCELLED booking=%d user=%d show=%d seats=%d refund=%d",
		ev.CancelledAt, ev.BookingID, ev.UserID, ev.ShowID, ev.SeatsReleased, ev.AmountRefunded), nil
}

func appendLogLine(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "booking.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", fpath, err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", fpath, err)
	}
	return nil
}
