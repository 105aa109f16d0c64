package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
)

const (
	sessionHeader     = "X-Session-Id"
	sessionContextKey = "session"
)

// SessionAuth резолвит сессию шлюза из заголовка X-Session-Id.
// Отсутствующая, нераспарсиваемая или протухшая сессия - 401
func SessionAuth(accounts in.AccountUseCase) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader(sessionHeader)
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
			return
		}

		sessionID, err := uuid.Parse(raw)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session id"})
			return
		}

		session, err := accounts.ResolveSession(ctx.Request.Context(), sessionID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "failed to resolve session"})
			return
		}
		if session == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		ctx.Set(sessionContextKey, session)
		ctx.Next()
	}
}

func currentSession(ctx *gin.Context) *domain.Session {
	value, exists := ctx.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*domain.Session)
	if !ok {
		return nil
	}
	return session
}
