package routes

import (
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/controllers"
	"nailstudio-backend/metrics"
	"nailstudio-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the wired controllers and middleware the router mounts.
type Dependencies struct {
	Config *config.Config

	Auth         *controllers.AuthController
	Appointments *controllers.AppointmentController
	Catalog      *controllers.CatalogController
	Expenses     *controllers.ExpenseController
	Reviews      *controllers.ReviewController
	Settings     *controllers.SettingsController
	Dashboard    *controllers.DashboardController
	Reports      *controllers.ReportController
	Reminders    *controllers.ReminderController
	Health       *controllers.HealthController

	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *utils.RateLimiter
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(config.PerformanceLogger(d.Config.SlowRequestLimit))
	r.Use(d.Metrics.Middleware())

	r.GET("/healthz", d.Health.Healthz)
	r.GET("/readyz", d.Health.Readyz)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	} else {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", d.Auth.Login)
		auth.GET("/me", utils.AuthMiddleware(d.Config.JWTSecret), d.Auth.Me)
	}

	limited := d.RateLimiter.Middleware()

	api := r.Group("/api")
	{
		api.GET("/settings", d.Settings.GetPublicSettings)
		api.GET("/availability", d.Appointments.GetAvailability)

		catalog := api.Group("/catalog")
		{
			catalog.GET("", d.Catalog.ListCatalog)
			catalog.GET("/:id", d.Catalog.GetCatalogItem)
			catalog.GET("/:id/share", d.Catalog.ShareCatalogItem)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", limited, d.Appointments.CreateAppointment)
			appointments.GET("/:id", d.Appointments.GetAppointment)
			appointments.POST("/:id/proof", limited, d.Appointments.UploadProof)
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("/:phone", d.Appointments.GetFavorite)
			favorites.PUT("/:phone", d.Appointments.SaveFavorite)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", d.Reviews.ListReviews)
			reviews.POST("", limited, d.Reviews.CreateReview)
		}
	}

	admin := r.Group("/api/admin")
	admin.Use(utils.AuthMiddleware(d.Config.JWTSecret))
	{
		appointments := admin.Group("/appointments")
		{
			appointments.GET("", d.Appointments.ListAppointments)
			appointments.POST("/sync", d.Appointments.SyncAll)
			appointments.PATCH("/:id/status", d.Appointments.UpdateStatus)
			appointments.POST("/:id/advance", d.Appointments.AdvanceStatus)
			appointments.PATCH("/:id/amount", d.Appointments.UpdateAmount)
			appointments.PATCH("/:id/notes", d.Appointments.UpdateNotes)
			appointments.DELETE("/:id", d.Appointments.DeleteAppointment)
			appointments.POST("/:id/thank-you", d.Appointments.SendThankYou)
			appointments.GET("/:id/reminder-link", d.Appointments.GetReminderLink)
			appointments.GET("/:id/reminders", d.Reminders.GetReminderHistory)
		}
		admin.GET("/thank-you/pending", d.Appointments.ListPendingThankYous)
		admin.POST("/reminders/run", d.Reminders.RunReminders)

		catalog := admin.Group("/catalog")
		{
			catalog.POST("", d.Catalog.CreateCatalogItem)
			catalog.PUT("/:id", d.Catalog.UpdateCatalogItem)
			catalog.DELETE("/:id", d.Catalog.DeleteCatalogItem)
			catalog.POST("/:id/image", d.Catalog.UploadCatalogImage)
		}

		expenses := admin.Group("/expenses")
		{
			expenses.GET("", d.Expenses.ListExpenses)
			expenses.POST("", d.Expenses.CreateExpense)
			expenses.DELETE("/:id", d.Expenses.DeleteExpense)
			expenses.POST("/:id/receipt", d.Expenses.UploadReceipt)
		}

		admin.GET("/settings", d.Settings.GetSettings)
		admin.PUT("/settings", d.Settings.UpdateSettings)

		admin.GET("/dashboard", d.Dashboard.GetDashboardOverview)
		admin.GET("/clients", d.Dashboard.GetClients)
		admin.GET("/calendar", d.Dashboard.GetCalendar)
		admin.GET("/reports", d.Reports.GetReport)
		admin.GET("/reports/export/:format", d.Reports.ExportReport)
	}

	return r
}
