package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

const sessionKeyPrefix = "booking-gateway:session:"

// Хранилище сессий в Redis. Переживает рестарты шлюза
// и позволяет гонять несколько экземпляров за балансировщиком.
// TTL ключа совпадает со сроком жизни сессии, логаут удаляет ключ
type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
	logger out.LoggerPort
}

func NewRedisAdapter(cfg *config.Config, logger out.LoggerPort) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Session.RedisAddr,
		DB:   cfg.Session.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Error("session.redis.connect_failed", out.LogFields{
			"addr":  cfg.Session.RedisAddr,
			"error": err.Error(),
		})
		return nil, err
	}

	return &RedisAdapter{
		client: client,
		ttl:    time.Duration(cfg.Session.TTLHours) * time.Hour,
		logger: logger.WithModule("SessionRedisAdapter"),
	}, nil
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}

func (r *RedisAdapter) Store(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, r.ttl).Err(); err != nil {
		r.logger.Error("session.store_failed", out.LogFields{
			"sessionId": session.ID,
			"error":     err.Error(),
		})
		return err
	}

	r.logger.Debug("session.store", out.LogFields{
		"sessionId": session.ID,
	})
	return nil
}

func (r *RedisAdapter) Load(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.logger.Error("session.load_failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		// Битую сессию выкидываем, пользователь просто логинится заново
		r.logger.Warn("session.decode_failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		_ = r.client.Del(ctx, sessionKey(sessionID)).Err()
		return nil, nil
	}

	return &session, nil
}

func (r *RedisAdapter) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		r.logger.Error("session.delete_failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return err
	}

	r.logger.Debug("session.delete", out.LogFields{
		"sessionId": sessionID,
	})
	return nil
}
