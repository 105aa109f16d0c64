package cache

import (
	"context"
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

func newCache(t *testing.T) *CacheAdapter {
	t.Helper()
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 16

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, adapter)
	return adapter
}

func TestCacheDisabledReturnsNilAdapter(t *testing.T) {
	cfg := &config.Config{}

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, adapter)
}

func TestCacheStoreAndGet(t *testing.T) {
	adapter := newCache(t)
	ctx := context.Background()
	appointments := []domain.Appointment{{ID: 1, DoctorID: 3}}

	_, exists := adapter.GetDoctorAppointments(ctx, 3)
	assert.False(t, exists)

	adapter.StoreDoctorAppointments(ctx, 3, appointments)

	cached, exists := adapter.GetDoctorAppointments(ctx, 3)
	require.True(t, exists)
	assert.Equal(t, appointments, cached)
}

func TestCacheInvalidateDoctor(t *testing.T) {
	adapter := newCache(t)
	ctx := context.Background()

	adapter.StoreDoctorAppointments(ctx, 3, []domain.Appointment{{ID: 1}})
	adapter.StoreDoctorAppointments(ctx, 4, []domain.Appointment{{ID: 2}})

	adapter.InvalidateDoctorAppointments(ctx, 3)

	_, exists := adapter.GetDoctorAppointments(ctx, 3)
	assert.False(t, exists)
	_, exists = adapter.GetDoctorAppointments(ctx, 4)
	assert.True(t, exists)
}

func TestCacheInvalidateAll(t *testing.T) {
	adapter := newCache(t)
	ctx := context.Background()

	adapter.StoreDoctorAppointments(ctx, 3, []domain.Appointment{{ID: 1}})
	adapter.StoreDoctorAppointments(ctx, 4, []domain.Appointment{{ID: 2}})

	adapter.InvalidateAll(ctx)

	_, exists := adapter.GetDoctorAppointments(ctx, 3)
	assert.False(t, exists)
	_, exists = adapter.GetDoctorAppointments(ctx, 4)
	assert.False(t, exists)
}

func TestCacheEvictsOldestEntries(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 2

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)

	ctx := context.Background()
	adapter.StoreDoctorAppointments(ctx, 1, []domain.Appointment{{ID: 1}})
	adapter.StoreDoctorAppointments(ctx, 2, []domain.Appointment{{ID: 2}})
	adapter.StoreDoctorAppointments(ctx, 3, []domain.Appointment{{ID: 3}})

	_, exists := adapter.GetDoctorAppointments(ctx, 1)
	assert.False(t, exists)
	_, exists = adapter.GetDoctorAppointments(ctx, 3)
	assert.True(t, exists)
}
