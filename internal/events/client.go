package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"receipt-tracker/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// HandlerFunc applies a received invalidation. Returning an error wrapping
// ErrDiscard drops the message; any other error requeues it.
type HandlerFunc func(ctx context.Context, event models.MappingInvalidation) error

var (
	ErrDiscard       = errors.New("discard message")
	errChannelClosed = errors.New("message channel closed")
)

// Client publishes and consumes mapping invalidations on a fanout exchange.
// Every instance binds its own queue so each one sees every change.
type Client struct {
	mu           sync.Mutex
	url          string
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	boundQueue   string
	logger       *slog.Logger
}

// NewClient dials the broker and declares the exchange and queue. An empty
// queue name asks the broker for an exclusive, auto-deleted queue.
func NewClient(url, exchangeName, queueName string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		url:          url,
		exchangeName: exchangeName,
		queueName:    queueName,
		logger:       logger,
	}

	if err := client.connect(); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) connect() error {
	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.channel = channel
	c.mu.Unlock()

	if err := c.setup(); err != nil {
		c.Close()
		return fmt.Errorf("setup exchange and queue: %w", err)
	}

	return nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName,
		amqp091.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	named := c.queueName != ""
	queue, err := c.channel.QueueDeclare(
		c.queueName,
		named,  // durable
		!named, // delete when unused
		!named, // exclusive
		false,  // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// fanout ignores the routing key
	if err := c.channel.QueueBind(queue.Name, "", c.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	c.boundQueue = queue.Name
	return nil
}

// Publish sends the event to every bound instance.
func (c *Client) Publish(ctx context.Context, event models.MappingInvalidation) error {
	body, err := EncodeInvalidation(event)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()
	if channel == nil {
		return fmt.Errorf("publish message: %w", amqp091.ErrClosed)
	}

	err = channel.PublishWithContext(
		ctx,
		c.exchangeName,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Type:        event.Kind,
			AppId:       event.OriginID,
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	c.logger.DebugContext(ctx, "published mapping invalidation",
		"kind", event.Kind,
		"tenant_id", event.TenantID.String(),
		"exchange", c.exchangeName)

	return nil
}

// Consume delivers invalidations to handler until ctx is cancelled or the
// channel closes.
func (c *Client) Consume(ctx context.Context, handler HandlerFunc) error {
	c.mu.Lock()
	channel := c.channel
	queue := c.boundQueue
	c.mu.Unlock()
	if channel == nil {
		return fmt.Errorf("start consuming: %w", amqp091.ErrClosed)
	}

	msgs, err := channel.Consume(
		queue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.InfoContext(ctx, "started consuming mapping invalidations", "queue", queue)

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "stopping invalidation consumer", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return errChannelClosed
			}
			c.handleDelivery(ctx, delivery, handler)
		}
	}
}

func (c *Client) handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler HandlerFunc) {
	event, err := DecodeInvalidation(delivery.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to decode invalidation", "error", err)
		delivery.Nack(false, false)
		return
	}

	if err := handler(ctx, event); err != nil {
		requeue := !errors.Is(err, ErrDiscard)
		c.logger.ErrorContext(ctx, "failed to apply invalidation",
			"error", err,
			"kind", event.Kind,
			"tenant_id", event.TenantID.String(),
			"requeue", requeue)
		delivery.Nack(false, requeue)
		return
	}

	delivery.Ack(false)
}

// Run keeps consuming across broker restarts, reconnecting with exponential
// backoff. It returns when ctx is cancelled.
func (c *Client) Run(ctx context.Context, handler HandlerFunc) error {
	attempt := 0
	for {
		err := c.Consume(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !isConnectionError(err) {
			return err
		}

		wait := exponentialBackoff(attempt)
		c.logger.WarnContext(ctx, "invalidation consumer disconnected, reconnecting",
			"error", err,
			"attempt", attempt+1,
			"backoff", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		c.Close()
		if err := c.connect(); err != nil {
			c.logger.WarnContext(ctx, "reconnect failed", "error", err)
			attempt++
			continue
		}
		attempt = 0
	}
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		if errors.Is(err, amqp091.ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

func exponentialBackoff(attempt int) time.Duration {
	const maxBackoff = 30 * time.Second
	if attempt > 5 {
		return maxBackoff
	}
	backoff := time.Second << attempt
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errChannelClosed) || errors.Is(err, amqp091.ErrClosed) {
		return true
	}

	msg := err.Error()
	for _, marker := range []string{"connection", "EOF", "broken pipe", "channel/connection is not open"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
