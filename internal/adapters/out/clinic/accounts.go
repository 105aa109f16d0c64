package clinic

import (
	"context"
	"net/http"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (a *ClinicAdapter) RegisterPatient(ctx context.Context, req out.RegisterPatientRequest) error {
	a.logger.Info("clinic.patient.register", out.LogFields{
		"email": req.Email,
	})

	if err := a.do(ctx, http.MethodPost, "/api/patients/register", "", req, nil); err != nil {
		a.logger.Error("clinic.patient.register_failed", out.LogFields{
			"email": req.Email,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func (a *ClinicAdapter) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Info("clinic.patient.login", out.LogFields{
		"email": email,
	})

	var resp loginResponse
	err := a.do(ctx, http.MethodPost, "/api/patients/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		a.logger.Warn("clinic.patient.login_failed", out.LogFields{
			"email": email,
			"error": err.Error(),
		})
		return "", err
	}

	return resp.AccessToken, nil
}

func (a *ClinicAdapter) GetProfile(ctx context.Context, token string) (*domain.Profile, error) {
	a.logger.Debug("clinic.profile.fetch", out.LogFields{})

	var profile domain.Profile
	if err := a.do(ctx, http.MethodGet, "/api/patients/profile", token, nil, &profile); err != nil {
		a.logger.Error("clinic.profile.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &profile, nil
}

func (a *ClinicAdapter) UpdateProfile(ctx context.Context, token string, req out.UpdateProfileRequest) error {
	a.logger.Info("clinic.profile.update", out.LogFields{
		"email": req.Email,
	})

	if err := a.do(ctx, http.MethodPut, "/api/patients/profile", token, req, nil); err != nil {
		a.logger.Error("clinic.profile.update_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
