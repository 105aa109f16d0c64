package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type ProfileInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// Аккаунт и жизненный цикл сессии. Логин - это логин в удаленном API
// плюс загрузка профиля плюс запись сессии, логаут - удаление сессии
type AccountUseCase interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// ResolveSession возвращает (nil, nil), если сессии нет
	// или ее токен уже протух
	ResolveSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)

	GetProfile(ctx context.Context, session *domain.Session) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, session *domain.Session, input ProfileInput) error
}
