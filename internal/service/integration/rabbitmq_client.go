package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/config"
	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// EventPublisher announces domain changes to other consumers. Publishing is
// best effort: callers log failures and carry on.
type EventPublisher interface {
	PublishSubjectGraded(ctx context.Context, event *models.SubjectGradedEvent) error
	PublishTodoListStatusChanged(ctx context.Context, event *models.TodoListStatusChangedEvent) error
	Close() error
}

type rabbitMQPublisher struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	exchange  string
	gradedKey string
	statusKey string
	logger    zerolog.Logger
}

func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger zerolog.Logger) (EventPublisher, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info().
		Str("exchange", cfg.Exchange).
		Msg("Connected to RabbitMQ")

	return &rabbitMQPublisher{
		conn:      conn,
		channel:   channel,
		exchange:  cfg.Exchange,
		gradedKey: cfg.SubjectGradedKey,
		statusKey: cfg.TodoListStatusChangeKey,
		logger:    logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishSubjectGraded(ctx context.Context, event *models.SubjectGradedEvent) error {
	if err := p.publish(ctx, p.gradedKey, event); err != nil {
		return err
	}

	p.logger.Debug().
		Str("subject_id", event.SubjectID).
		Str("grade", event.Grade.String()).
		Msg("Subject graded event published")

	return nil
}

func (p *rabbitMQPublisher) PublishTodoListStatusChanged(ctx context.Context, event *models.TodoListStatusChangedEvent) error {
	if err := p.publish(ctx, p.statusKey, event); err != nil {
		return err
	}

	p.logger.Debug().
		Str("todo_list_id", event.TodoListID).
		Str("status", event.Status.String()).
		Msg("Todo list status event published")

	return nil
}

func (p *rabbitMQPublisher) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		publishCtx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error().Err(err).Msg("Failed to close RabbitMQ channel")
		}
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	return nil
}

type noopPublisher struct {
	logger zerolog.Logger
}

// NewNoopPublisher drops every event. It stands in when messaging is disabled
// or the broker could not be reached at startup.
func NewNoopPublisher(logger zerolog.Logger) EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishSubjectGraded(_ context.Context, event *models.SubjectGradedEvent) error {
	p.logger.Debug().Str("subject_id", event.SubjectID).Msg("Messaging disabled, subject graded event dropped")
	return nil
}

func (p *noopPublisher) PublishTodoListStatusChanged(_ context.Context, event *models.TodoListStatusChangedEvent) error {
	p.logger.Debug().Str("todo_list_id", event.TodoListID).Msg("Messaging disabled, status event dropped")
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
