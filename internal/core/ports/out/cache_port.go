package out

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// Кэш списков записей врачей. Инвалидируется после каждой мутации
// брони и по событиям из брокера
type CachePort interface {
	GetDoctorAppointments(ctx context.Context, doctorID int) ([]domain.Appointment, bool)
	StoreDoctorAppointments(ctx context.Context, doctorID int, appointments []domain.Appointment)
	InvalidateDoctorAppointments(ctx context.Context, doctorID int)
	InvalidateAll(ctx context.Context)
}
