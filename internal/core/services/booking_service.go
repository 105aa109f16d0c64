package services

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
	"github.com/suchimauz/clinic-booking-gateway/internal/utils"
)

type BookingService struct {
	clinicPort out.ClinicPort
	cachePort  out.CachePort
	logger     out.LoggerPort
	cfg        *config.Config
}

func NewBookingService(
	clinicPort out.ClinicPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		clinicPort: clinicPort,
		cachePort:  cachePort,
		cfg:        cfg,
		logger:     logger.WithModule("BookingService"),
	}
}

// Book превращает намерение пользователя ровно в одну исходящую мутацию:
//   - только заметки: PUT c одними notes, расписание не трогаем;
//   - существующий id с датой и временем: PUT с новым временем,
//     сервер вернет запись в статус scheduled;
//   - новая бронь без переиспользуемого id: POST create;
//   - новая бронь в слот отмененной записи: PUT по ее id,
//     чтобы не копить по слоту брошенные отмененные строки.
//
// Нарушение предусловий валит операцию локально, запрос не отправляется.
// Неудачный запрос не повторяется - пользователь шлет форму заново
func (s *BookingService) Book(ctx context.Context, session *domain.Session, input in.BookingInput) (*in.BookingResult, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	if input.NotesOnly {
		return s.updateNotes(ctx, session, input)
	}

	if input.DoctorID <= 0 {
		return nil, domain.ErrDoctorRequired
	}
	if input.Date == "" || input.Time == "" {
		return nil, domain.ErrDateTimeRequired
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	appointmentTime, err := utils.FormatDateTime(date, input.Time)
	if err != nil {
		return nil, err
	}

	if input.AppointmentID != 0 {
		return s.reschedule(ctx, session, input, appointmentTime)
	}
	return s.create(ctx, session, input, appointmentTime)
}

func (s *BookingService) create(ctx context.Context, session *domain.Session, input in.BookingInput, appointmentTime string) (*in.BookingResult, error) {
	s.logger.Info("booking.create.started", out.LogFields{
		"doctorId":        input.DoctorID,
		"appointmentTime": appointmentTime,
	})

	id, err := s.clinicPort.CreateAppointment(ctx, session.Token, out.CreateAppointmentRequest{
		DoctorID:        input.DoctorID,
		AppointmentTime: appointmentTime,
		Notes:           input.Notes,
	})
	if err != nil {
		s.logger.Error("booking.create.failed", out.LogFields{
			"doctorId": input.DoctorID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.invalidate(ctx, input.DoctorID)

	s.logger.Info("booking.create.success", out.LogFields{
		"appointmentId": id,
		"doctorId":      input.DoctorID,
	})
	return &in.BookingResult{AppointmentID: id, Created: true}, nil
}

// Перенос существующей записи либо бронь в слот отмененной -
// для API клиники это одна и та же мутация
func (s *BookingService) reschedule(ctx context.Context, session *domain.Session, input in.BookingInput, appointmentTime string) (*in.BookingResult, error) {
	s.logger.Info("booking.reschedule.started", out.LogFields{
		"appointmentId":   input.AppointmentID,
		"appointmentTime": appointmentTime,
	})

	notes := input.Notes
	status := string(domain.AppointmentStatusScheduled)
	err := s.clinicPort.UpdateAppointment(ctx, session.Token, input.AppointmentID, out.UpdateAppointmentRequest{
		AppointmentTime: &appointmentTime,
		Notes:           &notes,
		Status:          &status,
	})
	if err != nil {
		s.logger.Error("booking.reschedule.failed", out.LogFields{
			"appointmentId": input.AppointmentID,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.invalidate(ctx, input.DoctorID)

	s.logger.Info("booking.reschedule.success", out.LogFields{
		"appointmentId": input.AppointmentID,
	})
	return &in.BookingResult{AppointmentID: input.AppointmentID}, nil
}

func (s *BookingService) updateNotes(ctx context.Context, session *domain.Session, input in.BookingInput) (*in.BookingResult, error) {
	if input.AppointmentID == 0 {
		return nil, domain.ErrAppointmentRequired
	}

	s.logger.Info("booking.notes.update_started", out.LogFields{
		"appointmentId": input.AppointmentID,
	})

	notes := input.Notes
	err := s.clinicPort.UpdateAppointment(ctx, session.Token, input.AppointmentID, out.UpdateAppointmentRequest{
		Notes: &notes,
	})
	if err != nil {
		s.logger.Error("booking.notes.update_failed", out.LogFields{
			"appointmentId": input.AppointmentID,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.logger.Info("booking.notes.update_success", out.LogFields{
		"appointmentId": input.AppointmentID,
	})
	return &in.BookingResult{AppointmentID: input.AppointmentID}, nil
}

func (s *BookingService) Cancel(ctx context.Context, session *domain.Session, appointmentID, doctorID int) error {
	if session == nil {
		return domain.ErrNoSession
	}

	s.logger.Info("booking.cancel.started", out.LogFields{
		"appointmentId": appointmentID,
	})

	if err := s.clinicPort.CancelAppointment(ctx, session.Token, appointmentID); err != nil {
		s.logger.Error("booking.cancel.failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return err
	}

	s.invalidate(ctx, doctorID)

	s.logger.Info("booking.cancel.success", out.LogFields{
		"appointmentId": appointmentID,
	})
	return nil
}

// После мутации кэшированное расписание врача больше не достоверно.
// Если врач неизвестен (отмена со страницы истории), сбрасываем весь кэш
func (s *BookingService) invalidate(ctx context.Context, doctorID int) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}
	if doctorID > 0 {
		s.cachePort.InvalidateDoctorAppointments(ctx, doctorID)
		return
	}
	s.cachePort.InvalidateAll(ctx)
}
