package domain

import (
	"time"

	"github.com/google/uuid"
)

// Сессия шлюза: токен удаленного API плюс денормализованный
// текущий пользователь. Живет в хранилище сессий от логина до логаута
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
