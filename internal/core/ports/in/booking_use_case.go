package in

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// Намерение пользователя. AppointmentID - id существующей записи:
// либо переносимой/редактируемой, либо отмененной записи,
// чей слот переиспользуется. Ноль означает новую бронь
type BookingInput struct {
	DoctorID      int
	Date          string
	Time          string
	Notes         string
	AppointmentID int
	NotesOnly     bool
}

type BookingResult struct {
	AppointmentID int
	Created       bool
}

// Координатор брони: одно намерение - ровно одна исходящая мутация.
// Никаких повторов, интерпретация ответа ложится на вызывающего
type BookingUseCase interface {
	Book(ctx context.Context, session *domain.Session, input BookingInput) (*BookingResult, error)
	Cancel(ctx context.Context, session *domain.Session, appointmentID, doctorID int) error
}
