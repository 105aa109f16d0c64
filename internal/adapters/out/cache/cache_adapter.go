package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type appointmentsEntry struct {
	Appointments []domain.Appointment
	StoredAt     time.Time
}

// LRU-кэш списков записей врачей. Ключ - id врача.
// Достоверность обеспечивается инвалидацией: после мутаций брони
// и по событиям из брокера
type CacheAdapter struct {
	appointments *lru.Cache[int, *appointmentsEntry]
	mu           sync.RWMutex
	logger       out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruCache, err := lru.New[int, *appointmentsEntry](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &CacheAdapter{
		appointments: lruCache,
		logger:       logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetDoctorAppointments(ctx context.Context, doctorID int) ([]domain.Appointment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.appointments.Get(doctorID)
	if !exists {
		c.logger.Debug("cache.appointments.get.miss", out.LogFields{
			"doctorId": doctorID,
		})
		return nil, false
	}

	c.logger.Debug("cache.appointments.get.hit", out.LogFields{
		"doctorId": doctorID,
		"count":    len(entry.Appointments),
	})
	return entry.Appointments, true
}

func (c *CacheAdapter) StoreDoctorAppointments(ctx context.Context, doctorID int, appointments []domain.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.appointments.store", out.LogFields{
		"doctorId": doctorID,
		"count":    len(appointments),
	})

	c.appointments.Add(doctorID, &appointmentsEntry{
		Appointments: appointments,
		StoredAt:     time.Now(),
	})
}

func (c *CacheAdapter) InvalidateDoctorAppointments(ctx context.Context, doctorID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.appointments.invalidate", out.LogFields{
		"doctorId": doctorID,
	})
	c.appointments.Remove(doctorID)
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.appointments.invalidate_all", out.LogFields{})
	c.appointments.Purge()
}
