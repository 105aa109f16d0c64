package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// Хранилище сессий в памяти процесса. Дефолт для локальной разработки
// и для деплоя в один экземпляр, сессии живут до рестарта
type MemoryAdapter struct {
	sessions map[uuid.UUID]domain.Session
	ttl      time.Duration
	mu       sync.RWMutex
	logger   out.LoggerPort
}

func NewMemoryAdapter(cfg *config.Config, logger out.LoggerPort) *MemoryAdapter {
	return &MemoryAdapter{
		sessions: make(map[uuid.UUID]domain.Session),
		ttl:      time.Duration(cfg.Session.TTLHours) * time.Hour,
		logger:   logger.WithModule("SessionMemoryAdapter"),
	}
}

func (m *MemoryAdapter) Store(ctx context.Context, session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session
	m.logger.Debug("session.store", out.LogFields{
		"sessionId": session.ID,
	})
	return nil
}

func (m *MemoryAdapter) Load(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[sessionID]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	if m.ttl > 0 && time.Since(session.CreatedAt) > m.ttl {
		m.mu.Lock()
		delete(m.sessions, sessionID)
		m.mu.Unlock()
		return nil, nil
	}

	return &session, nil
}

func (m *MemoryAdapter) Delete(ctx context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	m.logger.Debug("session.delete", out.LogFields{
		"sessionId": sessionID,
	})
	return nil
}
