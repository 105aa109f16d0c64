package clinic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// Адаптер удаленного API клиники. Шлюз не повторяет неудачные запросы:
// отказ доезжает до пользователя как сообщение, он сам отправляет форму заново
type ClinicAdapter struct {
	client  *http.Client
	baseURL string
	logger  out.LoggerPort
}

func NewClinicAdapter(cfg *config.Config, logger out.LoggerPort) *ClinicAdapter {
	return &ClinicAdapter{
		client:  &http.Client{Timeout: time.Duration(cfg.Clinic.TimeoutSeconds) * time.Second},
		baseURL: cfg.Clinic.URL,
		logger:  logger,
	}
}

// Ответ бекенда с сообщением. Поле msg он кладет и в ошибки, и в подтверждения
type msgResponse struct {
	Msg string `json:"msg"`
}

// do выполняет один JSON-запрос к API клиники. Непустой token уходит
// в Authorization: Bearer. Не-2xx ответ превращается в domain.RemoteError
// с сообщением сервера, если оно было
func (a *ClinicAdapter) do(ctx context.Context, method, path, token string, body interface{}, dest interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	url := fmt.Sprintf("%s%s", a.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var msg msgResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &domain.RemoteError{StatusCode: resp.StatusCode, Msg: msg.Msg}
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return err
		}
	}
	return nil
}
