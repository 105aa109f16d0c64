package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginStoresSession(t *testing.T) {
	clinic := &fakeClinicPort{
		token: "access-token",
		profile: &domain.Profile{
			ID:    7,
			Name:  "Ivan Petrov",
			Email: "ivan@example.com",
			Phone: "+70000000000",
		},
	}
	sessions := newFakeSessionPort()
	service := NewAccountService(clinic, sessions, nopLogger{})

	session, err := service.Login(context.Background(), "ivan@example.com", "secret")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, "access-token", session.Token)
	assert.Equal(t, 7, session.User.ID)
	assert.Equal(t, domain.RolePatient, session.User.Role)

	stored, ok := sessions.stored[session.ID]
	require.True(t, ok)
	assert.Equal(t, *session, stored)
}

func TestLoginRejectedByRemote(t *testing.T) {
	clinic := &fakeClinicPort{err: &domain.RemoteError{StatusCode: 401, Msg: "Invalid credentials"}}
	sessions := newFakeSessionPort()
	service := NewAccountService(clinic, sessions, nopLogger{})

	_, err := service.Login(context.Background(), "ivan@example.com", "wrong")

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 401, remote.StatusCode)
	assert.Empty(t, sessions.stored)
}

func TestResolveSessionUnknown(t *testing.T) {
	service := NewAccountService(&fakeClinicPort{}, newFakeSessionPort(), nopLogger{})

	session, err := service.ResolveSession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestResolveSessionAlive(t *testing.T) {
	sessions := newFakeSessionPort()
	stored := domain.Session{
		ID:    uuid.New(),
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  domain.User{ID: 7},
	}
	require.NoError(t, sessions.Store(context.Background(), stored))

	service := NewAccountService(&fakeClinicPort{}, sessions, nopLogger{})

	session, err := service.ResolveSession(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, stored.Token, session.Token)
}

func TestResolveSessionExpiredTokenIsDropped(t *testing.T) {
	sessions := newFakeSessionPort()
	stored := domain.Session{
		ID:    uuid.New(),
		Token: signedToken(t, time.Now().Add(-time.Hour)),
	}
	require.NoError(t, sessions.Store(context.Background(), stored))

	service := NewAccountService(&fakeClinicPort{}, sessions, nopLogger{})

	session, err := service.ResolveSession(context.Background(), stored.ID)
	require.NoError(t, err)
	// Протухший токен равносилен отсутствию сессии
	assert.Nil(t, session)
	assert.Contains(t, sessions.deleted, stored.ID)
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := newFakeSessionPort()
	sessionID := uuid.New()
	require.NoError(t, sessions.Store(context.Background(), domain.Session{ID: sessionID}))

	service := NewAccountService(&fakeClinicPort{}, sessions, nopLogger{})

	require.NoError(t, service.Logout(context.Background(), sessionID))
	assert.Empty(t, sessions.stored)
}

func TestRegisterPassesInputThrough(t *testing.T) {
	clinic := &fakeClinicPort{}
	service := NewAccountService(clinic, newFakeSessionPort(), nopLogger{})

	err := service.Register(context.Background(), in.RegisterInput{
		Name:     "Ivan Petrov",
		Email:    "ivan@example.com",
		Password: "secret",
		Phone:    "+70000000000",
	})
	require.NoError(t, err)

	require.NotNil(t, clinic.registered)
	assert.Equal(t, "ivan@example.com", clinic.registered.Email)
}

func TestProfileRequiresSession(t *testing.T) {
	service := NewAccountService(&fakeClinicPort{}, newFakeSessionPort(), nopLogger{})

	_, err := service.GetProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	err = service.UpdateProfile(context.Background(), nil, in.ProfileInput{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
