package in

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// История записей пациента: отфильтрованный и отсортированный список
// плюс фасеты для выпадающих списков фильтров
type HistoryResult struct {
	Appointments    []domain.AppointmentWithDoctor           `json:"appointments"`
	Specializations []string                                 `json:"specializations"`
	DoctorNames     []string                                 `json:"doctorNames"`
	StatusCounts    map[domain.AppointmentStatus]int         `json:"statusCounts"`
}

// Справочник врачей с фасетом специализаций
type DoctorDirectory struct {
	Doctors         []domain.Doctor `json:"doctors"`
	Specializations []string        `json:"specializations"`
}

type AppointmentListUseCase interface {
	GetHistory(ctx context.Context, session *domain.Session, filter domain.AppointmentFilter) (*HistoryResult, error)
	SearchDoctors(ctx context.Context, query, specialization string) (*DoctorDirectory, error)
}
