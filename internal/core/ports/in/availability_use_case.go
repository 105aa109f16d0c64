package in

import (
	"context"
	"time"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

type AvailabilityUseCase interface {
	// GetDoctorSlots разрешает каталог слотов врача на выбранную дату:
	// какие слоты свободны, какие заняты и какие отмененные записи
	// можно переиспользовать
	GetDoctorSlots(ctx context.Context, session *domain.Session, doctorID int, date time.Time) (*domain.Availability, error)
}
