package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// Хранилище сессий шлюза. Load возвращает (nil, nil), если сессии нет:
// отсутствие сессии - не ошибка хранилища
type SessionPort interface {
	Store(ctx context.Context, session domain.Session) error
	Load(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
