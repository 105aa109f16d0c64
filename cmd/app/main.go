package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	inhttp "github.com/suchimauz/clinic-booking-gateway/internal/adapters/in/http"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/cache"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/clinic"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-booking-gateway/internal/adapters/out/session"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/services"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/services/availability_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"clinicUrl":       cfg.Clinic.URL,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
		"redisSessions":   cfg.Session.RedisEnabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	clinicAdapter := clinic.NewClinicAdapter(cfg, mainLogger.WithModule("ClinicAdapter"))

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	var sessionAdapter out.SessionPort
	if cfg.Session.RedisEnabled {
		adapter, err := session.NewRedisAdapter(cfg, mainLogger.WithModule("SessionRedisAdapter"))
		if err != nil {
			log.Error("app.session.redis_init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		sessionAdapter = adapter
	} else {
		sessionAdapter = session.NewMemoryAdapter(cfg, mainLogger.WithModule("SessionMemoryAdapter"))
	}

	// Инициализация сервисов
	accountService := services.NewAccountService(clinicAdapter, sessionAdapter, mainLogger)
	availabilityService := availability_service.NewAvailabilityService(clinicAdapter, cacheAdapter, cfg, mainLogger)
	bookingService := services.NewBookingService(clinicAdapter, cacheAdapter, cfg, mainLogger)
	appointmentListService := services.NewAppointmentListService(clinicAdapter, mainLogger)

	// Настройка HTTP сервера
	router := gin.Default()
	sessionAuth := inhttp.SessionAuth(accountService)

	inhttp.NewAuthController(accountService).RegisterRoutes(router)
	inhttp.NewBookingController(availabilityService, bookingService).RegisterRoutes(router, sessionAuth)
	inhttp.NewDashboardController(accountService, appointmentListService).RegisterRoutes(router, sessionAuth)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewAppointmentListener(
			cacheAdapter,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		// Слушатель может не подняться, даже когда RabbitMQ включен:
		// без кэша он не нужен
		if listener != nil {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if err := listener.Start(ctx); err != nil {
				log.Error("app.rabbitmq.start_failed", out.LogFields{
					"error": err.Error(),
				})
				os.Exit(1)
			}

			defer func() {
				if err := listener.Stop(); err != nil {
					log.Error("app.rabbitmq.stop_failed", out.LogFields{
						"error": err.Error(),
					})
				}
			}()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
