package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields) {}
func (nopLogger) Info(string, out.LogFields) {}
func (nopLogger) Warn(string, out.LogFields) {}
func (nopLogger) Error(string, out.LogFields) {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

// Фейковый порт клиники: запоминает последние вызовы,
// err валит любую операцию
type fakeClinicPort struct {
	err error

	token        string
	profile      *domain.Profile
	doctors      []domain.Doctor
	appointments []domain.Appointment
	createdID    int

	registered *out.RegisterPatientRequest
	created    *out.CreateAppointmentRequest
	updatedID  int
	updated    *out.UpdateAppointmentRequest
	canceledID int

	createCalls int
	updateCalls int
}

func (f *fakeClinicPort) RegisterPatient(_ context.Context, req out.RegisterPatientRequest) error {
	f.registered = &req
	return f.err
}

func (f *fakeClinicPort) Login(context.Context, string, string) (string, error) {
	return f.token, f.err
}

func (f *fakeClinicPort) GetProfile(context.Context, string) (*domain.Profile, error) {
	return f.profile, f.err
}

func (f *fakeClinicPort) UpdateProfile(context.Context, string, out.UpdateProfileRequest) error {
	return f.err
}

func (f *fakeClinicPort) GetDoctors(context.Context) ([]domain.Doctor, error) {
	return f.doctors, f.err
}

func (f *fakeClinicPort) GetDoctorAppointments(context.Context, string, int) ([]domain.Appointment, error) {
	return f.appointments, f.err
}

func (f *fakeClinicPort) CreateAppointment(_ context.Context, _ string, req out.CreateAppointmentRequest) (int, error) {
	f.createCalls++
	f.created = &req
	return f.createdID, f.err
}

func (f *fakeClinicPort) UpdateAppointment(_ context.Context, _ string, appointmentID int, req out.UpdateAppointmentRequest) error {
	f.updateCalls++
	f.updatedID = appointmentID
	f.updated = &req
	return f.err
}

func (f *fakeClinicPort) CancelAppointment(_ context.Context, _ string, appointmentID int) error {
	f.canceledID = appointmentID
	return f.err
}

type fakeCachePort struct {
	invalidated    []int
	invalidatedAll bool
}

func (f *fakeCachePort) GetDoctorAppointments(context.Context, int) ([]domain.Appointment, bool) {
	return nil, false
}

func (f *fakeCachePort) StoreDoctorAppointments(context.Context, int, []domain.Appointment) {}

func (f *fakeCachePort) InvalidateDoctorAppointments(_ context.Context, doctorID int) {
	f.invalidated = append(f.invalidated, doctorID)
}

func (f *fakeCachePort) InvalidateAll(context.Context) {
	f.invalidatedAll = true
}

type fakeSessionPort struct {
	stored   map[uuid.UUID]domain.Session
	deleted  []uuid.UUID
	storeErr error
}

func newFakeSessionPort() *fakeSessionPort {
	return &fakeSessionPort{stored: make(map[uuid.UUID]domain.Session)}
}

func (f *fakeSessionPort) Store(_ context.Context, session domain.Session) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored[session.ID] = session
	return nil
}

func (f *fakeSessionPort) Load(_ context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	session, ok := f.stored[sessionID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (f *fakeSessionPort) Delete(_ context.Context, sessionID uuid.UUID) error {
	delete(f.stored, sessionID)
	f.deleted = append(f.deleted, sessionID)
	return nil
}
