package availability_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type AvailabilityService struct {
	clinicPort out.ClinicPort
	cachePort  out.CachePort
	logger     out.LoggerPort
	cfg        *config.Config

	// Подменяется в тестах
	now func() time.Time
}

func NewAvailabilityService(
	clinicPort out.ClinicPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		clinicPort: clinicPort,
		cachePort:  cachePort,
		cfg:        cfg,
		logger:     logger.WithModule("AvailabilityService"),
		now:        time.Now,
	}
}

func (s *AvailabilityService) GetDoctorSlots(ctx context.Context, session *domain.Session, doctorID int, date time.Time) (*domain.Availability, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}
	if doctorID <= 0 {
		return nil, domain.ErrDoctorRequired
	}

	s.logger.Info("slots.resolve.started", out.LogFields{
		"doctorId": doctorID,
		"date":     date.Format("2006-01-02"),
	})

	appointments, err := s.doctorAppointments(ctx, session, doctorID)
	if err != nil {
		s.logger.Error("slots.resolve.appointments.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.resolve.appointments.fetch_failed: %w", err)
	}

	availability, skipped := Resolve(appointments, date, s.now())

	// Записи с неразбираемым временем не блокируют слоты.
	// Открытый вопрос: не маскирует ли это проблемы качества данных выше по течению
	for _, appointment := range skipped {
		s.logger.Warn("slots.resolve.appointment.skipped", out.LogFields{
			"appointmentId": appointment.ID,
			"rawTime":       appointment.Time.Raw,
		})
	}

	s.logger.Debug("slots.resolve.success", out.LogFields{
		"doctorId":   doctorID,
		"slotsCount": len(availability.Slots),
		"reuseCount": len(availability.Reuse),
	})

	return availability, nil
}

// Список записей врача, через кэш, если он включен
func (s *AvailabilityService) doctorAppointments(ctx context.Context, session *domain.Session, doctorID int) ([]domain.Appointment, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if appointments, exists := s.cachePort.GetDoctorAppointments(ctx, doctorID); exists {
			s.logger.Debug("slots.resolve.cache.hit", out.LogFields{
				"doctorId":          doctorID,
				"appointmentsCount": len(appointments),
			})
			return appointments, nil
		}
		s.logger.Debug("slots.resolve.cache.miss", out.LogFields{
			"doctorId": doctorID,
		})
	}

	appointments, err := s.clinicPort.GetDoctorAppointments(ctx, session.Token, doctorID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreDoctorAppointments(ctx, doctorID, appointments)
	}

	return appointments, nil
}
