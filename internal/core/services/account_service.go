package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
	"github.com/suchimauz/clinic-booking-gateway/internal/utils"
)

type AccountService struct {
	clinicPort  out.ClinicPort
	sessionPort out.SessionPort
	logger      out.LoggerPort

	now func() time.Time
}

func NewAccountService(
	clinicPort out.ClinicPort,
	sessionPort out.SessionPort,
	logger out.LoggerPort,
) *AccountService {
	return &AccountService{
		clinicPort:  clinicPort,
		sessionPort: sessionPort,
		logger:      logger.WithModule("AccountService"),
		now:         time.Now,
	}
}

func (s *AccountService) Register(ctx context.Context, input in.RegisterInput) error {
	s.logger.Info("account.register.started", out.LogFields{
		"email": input.Email,
	})

	err := s.clinicPort.RegisterPatient(ctx, out.RegisterPatientRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		s.logger.Error("account.register.failed", out.LogFields{
			"email": input.Email,
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("account.register.success", out.LogFields{
		"email": input.Email,
	})
	return nil
}

// Login логинится в удаленном API, подтягивает профиль и заводит сессию.
// Токен и денормализованный пользователь живут в хранилище сессий до логаута
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	token, err := s.clinicPort.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("account.login.rejected", out.LogFields{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	profile, err := s.clinicPort.GetProfile(ctx, token)
	if err != nil {
		s.logger.Error("account.login.profile_fetch_failed", out.LogFields{
			"email": email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("account.login.profile_fetch_failed: %w", err)
	}

	session := domain.Session{
		ID:    uuid.New(),
		Token: token,
		User: domain.User{
			ID:    profile.ID,
			Name:  profile.Name,
			Email: profile.Email,
			Phone: profile.Phone,
			Role:  domain.RolePatient,
		},
		CreatedAt: s.now(),
	}

	if err := s.sessionPort.Store(ctx, session); err != nil {
		s.logger.Error("account.login.session_store_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("account.login.session_store_failed: %w", err)
	}

	s.logger.Info("account.login.success", out.LogFields{
		"sessionId": session.ID,
		"userId":    session.User.ID,
	})

	return &session, nil
}

func (s *AccountService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	s.logger.Info("account.logout", out.LogFields{
		"sessionId": sessionID,
	})
	return s.sessionPort.Delete(ctx, sessionID)
}

func (s *AccountService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessionPort.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	// Протухший токен равносилен отсутствию сессии, держать ее дальше незачем
	if utils.IsTokenExpired(session.Token, s.now()) {
		s.logger.Info("account.session.expired", out.LogFields{
			"sessionId": sessionID,
		})
		if err := s.sessionPort.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("account.session.cleanup_failed", out.LogFields{
				"sessionId": sessionID,
				"error":     err.Error(),
			})
		}
		return nil, nil
	}

	return session, nil
}

func (s *AccountService) GetProfile(ctx context.Context, session *domain.Session) (*domain.Profile, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}
	return s.clinicPort.GetProfile(ctx, session.Token)
}

func (s *AccountService) UpdateProfile(ctx context.Context, session *domain.Session, input in.ProfileInput) error {
	if session == nil {
		return domain.ErrNoSession
	}

	err := s.clinicPort.UpdateProfile(ctx, session.Token, out.UpdateProfileRequest{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		s.logger.Error("account.profile.update_failed", out.LogFields{
			"userId": session.User.ID,
			"error":  err.Error(),
		})
		return err
	}

	s.logger.Info("account.profile.update_success", out.LogFields{
		"userId": session.User.ID,
	})
	return nil
}
