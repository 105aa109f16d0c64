package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// respondError раскладывает ошибку по таксономии:
// локальная валидация - 400, нет сессии - 401, отказ удаленного API -
// его статус и его сообщение, транспортная ошибка - 502 с generic-текстом.
// Ничего не ретраится, пользователь перезапускает операцию сам
func respondError(ctx *gin.Context, err error, fallback string) {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		msg := remote.Msg
		if msg == "" {
			msg = fallback
		}
		ctx.JSON(remote.StatusCode, gin.H{"error": msg})
		return
	}

	switch {
	case errors.Is(err, domain.ErrDoctorRequired),
		errors.Is(err, domain.ErrDateTimeRequired),
		errors.Is(err, domain.ErrMalformedTime),
		errors.Is(err, domain.ErrMalformedDate),
		errors.Is(err, domain.ErrAppointmentRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoSession):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	}
}
