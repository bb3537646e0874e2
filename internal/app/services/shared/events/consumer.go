package events

import (
	"context"
	"doctor-finder-service/internal/app/contracts"
	"doctor-finder-service/internal/app/models"
	"doctor-finder-service/internal/pkg/constvars"
	"doctor-finder-service/internal/pkg/exceptions"
	"doctor-finder-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const consumerTag = "doctor-finder-directory-consumer"

// Consumer reacts to directory change events. A doctors change drops and
// rebuilds the cached filter options.
type Consumer struct {
	ch         *amqp.Channel
	queue      string
	maintainer contracts.FilterOptionsMaintainer
	log        *zap.Logger
	wg         sync.WaitGroup
}

func NewDirectoryEventConsumer(conn *amqp.Connection, queue string, maintainer contracts.FilterOptionsMaintainer, log *zap.Logger) (contracts.DirectoryEventConsumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := declareQueue(ch, queue); err != nil {
		return nil, err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	consumer := newConsumer(queue, maintainer, log)
	consumer.ch = ch
	return consumer, nil
}

func newConsumer(queue string, maintainer contracts.FilterOptionsMaintainer, log *zap.Logger) *Consumer {
	return &Consumer{
		queue:      queue,
		maintainer: maintainer,
		log:        log,
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.ch.Consume(
		c.queue,     // queue
		consumerTag, // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return exceptions.ErrRabbitMQConsumeQueue(err, c.queue)
	}

	c.log.Info("DirectoryEventConsumer started",
		zap.String(constvars.LoggingQueueNameKey, c.queue),
	)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					c.log.Info("DirectoryEventConsumer delivery channel closed",
						zap.String(constvars.LoggingQueueNameKey, c.queue),
					)
					return
				}
				c.process(ctx, delivery)
			}
		}
	}()
	return nil
}

func (c *Consumer) process(ctx context.Context, delivery amqp.Delivery) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	err := c.HandleDelivery(ctx, delivery.Body)
	if err == nil {
		_ = delivery.Ack(false)
		return
	}

	// Failed events are dropped rather than requeued. Under Qos(1) a requeue
	// during a Redis or Mongo outage redelivers the same message in a tight
	// loop; the warm worker rebuilds the filter options on its next tick.
	c.log.Warn("DirectoryEventConsumer.process dropping event after failure",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Error(err),
	)
	_ = delivery.Nack(false, false)
}

func (c *Consumer) HandleDelivery(ctx context.Context, body []byte) error {
	requestID := utils.GetRequestID(ctx)

	var event models.DirectoryEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.log.Error("DirectoryEventConsumer.HandleDelivery error parsing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotParseJSON(err)
	}

	c.log.Info("DirectoryEventConsumer.HandleDelivery called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingDoctorIDKey, event.DoctorID),
	)

	switch event.Type {
	case constvars.DirectoryEventDoctorsChanged:
		if err := c.maintainer.InvalidateFilterOptions(ctx); err != nil {
			return err
		}
		return c.maintainer.WarmFilterOptions(ctx)
	case constvars.DirectoryEventAvailabilityChanged:
		// Calendars are read per request, nothing is cached.
		return nil
	default:
		err := exceptions.ErrRabbitMQUnknownEvent(event.Type)
		c.log.Warn("DirectoryEventConsumer.HandleDelivery unknown event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
		)
		return err
	}
}

func (c *Consumer) Stop() error {
	if c.ch == nil {
		return nil
	}
	if err := c.ch.Cancel(consumerTag, false); err != nil {
		return err
	}
	c.wg.Wait()
	return c.ch.Close()
}
