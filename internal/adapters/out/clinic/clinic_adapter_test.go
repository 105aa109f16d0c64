package clinic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
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

func newAdapter(serverURL string) *ClinicAdapter {
	cfg := &config.Config{}
	cfg.Clinic.URL = serverURL
	cfg.Clinic.TimeoutSeconds = 2
	return NewClinicAdapter(cfg, nopLogger{})
}

func TestLoginReturnsAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/patients/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ivan@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]string{"access_token": "jwt-token"})
	}))
	defer server.Close()

	token, err := newAdapter(server.URL).Login(context.Background(), "ivan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid credentials"})
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).Login(context.Background(), "ivan@example.com", "wrong")

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.StatusCode)
	assert.Equal(t, "Invalid credentials", remote.Error())
}

func TestGetProfileSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/patients/profile", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   7,
			"name": "Ivan Petrov",
			"appointments": []map[string]interface{}{
				{"id": 1, "doctor_id": 3, "appointment_time": "2024-03-05 09:00", "status": "scheduled"},
			},
		})
	}))
	defer server.Close()

	profile, err := newAdapter(server.URL).GetProfile(context.Background(), "jwt-token")
	require.NoError(t, err)

	assert.Equal(t, 7, profile.ID)
	require.Len(t, profile.Appointments, 1)
	assert.Equal(t, 3, profile.Appointments[0].DoctorID)
	assert.Equal(t, "09:00", profile.Appointments[0].Time.HHMM())
}

func TestGetProfileSurvivesMalformedAppointmentTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 7,
			"appointments": []map[string]interface{}{
				{"id": 1, "appointment_time": "not a time", "status": "scheduled"},
			},
		})
	}))
	defer server.Close()

	profile, err := newAdapter(server.URL).GetProfile(context.Background(), "jwt-token")
	require.NoError(t, err)

	// Одна битая запись не валит декодирование всего профиля
	require.Len(t, profile.Appointments, 1)
	assert.True(t, profile.Appointments[0].Time.Date.IsZero())
	assert.Equal(t, "not a time", profile.Appointments[0].Time.Raw)
}

func TestCreateAppointment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments/create", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["doctor_id"])
		assert.Equal(t, "2024-03-05 09:00", body["appointment_time"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"msg":            "Appointment created",
			"appointment_id": 17,
		})
	}))
	defer server.Close()

	id, err := newAdapter(server.URL).CreateAppointment(context.Background(), "jwt-token", out.CreateAppointmentRequest{
		DoctorID:        3,
		AppointmentTime: "2024-03-05 09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 17, id)
}

func TestUpdateAppointmentOmitsUnsetFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/appointments/42", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"notes": "только заметки"}, body)

		json.NewEncoder(w).Encode(map[string]string{"msg": "Appointment updated"})
	}))
	defer server.Close()

	notes := "только заметки"
	err := newAdapter(server.URL).UpdateAppointment(context.Background(), "jwt-token", 42, out.UpdateAppointmentRequest{
		Notes: &notes,
	})
	require.NoError(t, err)
}

func TestCancelAppointment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/appointments/42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Appointment canceled"})
	}))
	defer server.Close()

	require.NoError(t, newAdapter(server.URL).CancelAppointment(context.Background(), "jwt-token", 42))
}

func TestGetDoctorAppointments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/doctors/3/appointments", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "doctor_id": 3, "appointment_time": "2024-03-05 10:00", "status": "scheduled"},
			{"id": 2, "doctor_id": 3, "appointment_time": "2024-03-05 14:00", "status": "canceled"},
		})
	}))
	defer server.Close()

	appointments, err := newAdapter(server.URL).GetDoctorAppointments(context.Background(), "jwt-token", 3)
	require.NoError(t, err)

	require.Len(t, appointments, 2)
	assert.Equal(t, domain.AppointmentStatusScheduled, appointments[0].Status)
	assert.Equal(t, domain.AppointmentStatusCanceled, appointments[1].Status)
}

func TestRemoteErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).GetDoctors(context.Background())

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
	// Без msg в теле ответа сообщение собирается из статуса
	assert.Contains(t, remote.Error(), "500")
}
