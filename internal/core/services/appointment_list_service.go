package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type AppointmentListService struct {
	clinicPort out.ClinicPort
	logger     out.LoggerPort
}

func NewAppointmentListService(clinicPort out.ClinicPort, logger out.LoggerPort) *AppointmentListService {
	return &AppointmentListService{
		clinicPort: clinicPort,
		logger:     logger.WithModule("AppointmentListService"),
	}
}

// GetHistory собирает историю записей пациента: профиль плюс справочник
// врачей, джойн по doctor_id, фильтры и сортировка поверх.
// Фасеты пересчитываются на каждый вызов - они всегда отражают
// последние загруженные данные
func (s *AppointmentListService) GetHistory(ctx context.Context, session *domain.Session, filter domain.AppointmentFilter) (*in.HistoryResult, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	profile, err := s.clinicPort.GetProfile(ctx, session.Token)
	if err != nil {
		s.logger.Error("history.profile.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("history.profile.fetch_failed: %w", err)
	}

	doctors, err := s.clinicPort.GetDoctors(ctx)
	if err != nil {
		s.logger.Error("history.doctors.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("history.doctors.fetch_failed: %w", err)
	}

	joined := JoinDoctors(profile.Appointments, doctors)

	result := &in.HistoryResult{
		Appointments:    FilterAppointments(joined, filter),
		Specializations: DistinctSpecializations(joined),
		DoctorNames:     DistinctDoctorNames(joined),
		StatusCounts:    StatusCounts(joined),
	}

	s.logger.Debug("history.success", out.LogFields{
		"total":    len(joined),
		"filtered": len(result.Appointments),
	})

	return result, nil
}

// SearchDoctors отдает справочник врачей с поиском по подстроке
// имени или специализации и фильтром по специализации
func (s *AppointmentListService) SearchDoctors(ctx context.Context, query, specialization string) (*in.DoctorDirectory, error) {
	doctors, err := s.clinicPort.GetDoctors(ctx)
	if err != nil {
		s.logger.Error("doctors.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	directory := &in.DoctorDirectory{
		Doctors:         FilterDoctors(doctors, query, specialization),
		Specializations: DoctorSpecializations(doctors),
	}
	return directory, nil
}

func JoinDoctors(appointments []domain.Appointment, doctors []domain.Doctor) []domain.AppointmentWithDoctor {
	byID := make(map[int]domain.Doctor, len(doctors))
	for _, doctor := range doctors {
		byID[doctor.ID] = doctor
	}

	joined := make([]domain.AppointmentWithDoctor, 0, len(appointments))
	for _, appointment := range appointments {
		entry := domain.AppointmentWithDoctor{Appointment: appointment}
		if doctor, ok := byID[appointment.DoctorID]; ok {
			entry.Doctor = &doctor
		}
		joined = append(joined, entry)
	}
	return joined
}

func FilterDoctors(doctors []domain.Doctor, query, specialization string) []domain.Doctor {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if specialization != "" && specialization != domain.FilterAll &&
			doctor.SpecializationOrGeneral() != specialization {
			continue
		}
		if query != "" {
			nameMatch := strings.Contains(strings.ToLower(doctor.Name), query)
			specMatch := strings.Contains(strings.ToLower(doctor.Specialization), query)
			if !nameMatch && !specMatch {
				continue
			}
		}
		filtered = append(filtered, doctor)
	}
	return filtered
}

func DoctorSpecializations(doctors []domain.Doctor) []string {
	seen := make(map[string]bool)
	specs := make([]string, 0)
	for _, doctor := range doctors {
		spec := doctor.SpecializationOrGeneral()
		if !seen[spec] {
			seen[spec] = true
			specs = append(specs, spec)
		}
	}
	return specs
}
