package events

import (
	"context"
	"fmt"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishConfirmation is satisfied by *amqp.DeferredConfirmation.
type publishConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// publisherChannel publishes to the default exchange and hands back the confirmation of that one message.
type publisherChannel interface {
	Publish(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error)
}

type confirmChannel struct {
	ch *amqp.Channel
}

func (c *confirmChannel) Publish(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if confirmation == nil {
		return nil, fmt.Errorf("channel is not in confirm mode")
	}
	return confirmation, nil
}

type rabbitMQPublisher struct {
	ch        publisherChannel
	queueName string
	log       *zap.Logger
}

// NewRabbitMQPublisher declares the durable consultation queue and enables publisher confirms.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.ConsultationEventPublisher, func() error, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, nil, err
	}

	publisher := &rabbitMQPublisher{
		ch:        &confirmChannel{ch: ch},
		queueName: queueName,
		log:       log,
	}
	return publisher, ch.Close, nil
}

func (p *rabbitMQPublisher) PublishConsultationCompleted(ctx context.Context, event *models.ConsultationEvent) error {
	p.log.Info("rabbitMQPublisher.PublishConsultationCompleted called",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingQueueNameKey, p.queueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.EventType,
		MessageId:    event.RequestID,
		Timestamp:    event.OccurredAt,
	}

	confirmation, err := p.ch.Publish(ctx, p.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
	}
	return nil
}

type logOnlyPublisher struct {
	log *zap.Logger
}

// NewLogOnlyPublisher is used when no broker is configured.
func NewLogOnlyPublisher(log *zap.Logger) contracts.ConsultationEventPublisher {
	return &logOnlyPublisher{log: log}
}

func (p *logOnlyPublisher) PublishConsultationCompleted(ctx context.Context, event *models.ConsultationEvent) error {
	p.log.Info("logOnlyPublisher.PublishConsultationCompleted",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.Bool(constvars.LoggingHasAudioKey, event.HasAudio),
		zap.Bool(constvars.LoggingHasImageKey, event.HasImage),
		zap.Bool(constvars.LoggingHasReplyAudioKey, event.HasReplyAudio),
	)
	return nil
}
