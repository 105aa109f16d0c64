package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type AppointmentEventType string

const (
	AppointmentEventStore      AppointmentEventType = "store"
	AppointmentEventInvalidate AppointmentEventType = "invalidate"
)

// Событие бекенда об изменении записи на прием.
// Нулевой doctor_id означает, что точечно инвалидировать нечего -
// сбрасываем весь кэш
type AppointmentEvent struct {
	DoctorID      int `json:"doctor_id"`
	AppointmentID int `json:"appointment_id"`
}

// Слушатель событий о записях. Любая мутация записи на стороне бекенда
// делает кэшированное расписание врача недостоверным - снимаем его
type AppointmentListener struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	cachePort out.CachePort
	cfg       *config.Config
	logger    out.LoggerPort
}

func NewAppointmentListener(cachePort out.CachePort, cfg *config.Config, logger out.LoggerPort) (*AppointmentListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	// Слушатель существует только ради инвалидации кэша.
	// Без кэша подключаться к брокеру незачем
	if cachePort == nil {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "Cache is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &AppointmentListener{
		conn:      conn,
		channel:   channel,
		cachePort: cachePort,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

func (l *AppointmentListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.Bind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				l.handle(ctx, msg)
			}
		}
	}()

	l.logger.Info("appointment.queue.started", out.LogFields{
		"queue": queue.Name,
	})
	return nil
}

func (l *AppointmentListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// clinic.booking-gateway.appointment.store
// clinic.booking-gateway.appointment.invalidate
func parseEventType(routingKey string) (AppointmentEventType, error) {
	parts := strings.Split(routingKey, ".")
	if len(parts) < 4 {
		return "", fmt.Errorf("invalid routing key: %s", routingKey)
	}
	return AppointmentEventType(parts[3]), nil
}

func (l *AppointmentListener) handle(ctx context.Context, msg amqp.Delivery) {
	// Без кэша инвалидировать нечего, событие просто подтверждаем
	if l.cachePort == nil {
		_ = msg.Ack(false)
		return
	}

	eventType, err := parseEventType(msg.RoutingKey)
	if err != nil {
		l.logger.Warn("appointment.event.bad_routing_key", out.LogFields{
			"routingKey": msg.RoutingKey,
		})
		_ = msg.Ack(false)
		return
	}

	var event AppointmentEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		l.logger.Warn("appointment.event.decode_failed", out.LogFields{
			"routingKey": msg.RoutingKey,
			"error":      err.Error(),
		})
		_ = msg.Ack(false)
		return
	}

	switch eventType {
	case AppointmentEventStore, AppointmentEventInvalidate:
		if event.DoctorID > 0 {
			l.cachePort.InvalidateDoctorAppointments(ctx, event.DoctorID)
		} else {
			l.cachePort.InvalidateAll(ctx)
		}
		l.logger.Debug("appointment.event.processed", out.LogFields{
			"type":          eventType,
			"doctorId":      event.DoctorID,
			"appointmentId": event.AppointmentID,
		})
	default:
		l.logger.Warn("appointment.event.unknown_type", out.LogFields{
			"type": eventType,
		})
	}

	_ = msg.Ack(false)
}
