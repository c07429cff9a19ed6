package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/controllers"
	"nailstudio-backend/integrations"
	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/notify"
	"nailstudio-backend/repository"
	"nailstudio-backend/routes"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	cfg := config.Load()
	config.SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := config.SetupTracing(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up tracing")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	store := repository.NewStore(db)
	loc := cfg.Location()

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, generated a random secret; admin sessions reset on restart")
		cfg.JWTSecret = utils.GenerateJWTSecret()
	}
	pinHash, err := utils.HashPassword(cfg.AdminPIN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin PIN")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var limiter *utils.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		limiter = utils.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "nailstudio:rl")
	}

	var archive *integrations.ReportArchive
	if cfg.ReportsBucket != "" {
		s3Client, err := integrations.NewS3Client(ctx, cfg.AWSRegion)
		if err != nil {
			log.Error().Err(err).Msg("report archive disabled")
		} else {
			archive = integrations.NewReportArchive(s3Client, cfg.ReportsBucket)
		}
	}

	var sender integrations.MessageSender
	if cfg.TwilioEnabled() {
		sender = integrations.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber)
	}

	messenger := notify.Messenger{BusinessPhone: cfg.BusinessPhone, BusinessName: cfg.BusinessName}
	syncer := integrations.NewSheetsSyncer(cfg.WebhookTimeout, loc, m)

	settings := services.NewSettingsService(store, models.DefaultSettings(cfg.OpeningHour, cfg.ClosingHour, cfg.DefaultSlotInterval))
	booking := services.NewBookingService(store, settings, messenger, syncer, m, loc)
	lifecycle := services.NewLifecycleService(store, settings, messenger, syncer, m, loc, cfg.ThankYouDelay)
	finance := services.NewFinanceService(store, loc)
	reminders := services.NewReminderService(store, messenger, sender, m, loc)

	if cfg.RemindersEnabled {
		if err := reminders.StartScheduler(cfg.ReminderCron); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.ReminderCron).Msg("failed to start reminder scheduler")
		}
		defer reminders.Stop()
	}

	r := routes.SetupRouter(routes.Dependencies{
		Config:       cfg,
		Auth:         controllers.NewAuthController(pinHash, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour),
		Appointments: controllers.NewAppointmentController(booking, lifecycle),
		Catalog:      controllers.NewCatalogController(services.NewCatalogService(store, messenger, cfg.PublicBaseURL)),
		Expenses:     controllers.NewExpenseController(services.NewExpenseService(store, loc)),
		Reviews:      controllers.NewReviewController(services.NewReviewService(store, loc)),
		Settings:     controllers.NewSettingsController(settings),
		Dashboard:    controllers.NewDashboardController(finance),
		Reports:      controllers.NewReportController(finance, archive, m),
		Reminders:    controllers.NewReminderController(reminders),
		Health:       controllers.NewHealthController(store),
		Metrics:      m,
		Gatherer:     reg,
		RateLimiter:  limiter,
	})
	if cfg.IsDevelopment() {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, cfg.OTelServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		log.Debug().Str("method", route.Method).Str("path", route.Path).Msg("route")
	}
}
