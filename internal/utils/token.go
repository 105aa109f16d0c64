package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsTokenExpired проверяет exp-claim токена без проверки подписи.
// Подпись - забота бекенда, шлюзу достаточно не ходить в API
// с заведомо протухшим токеном. Токен без exp считаем живым
func IsTokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Непрозрачный токен, срок жизни знает только бекенд
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Time.Before(now)
}
