package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	"github.com/BruksfildServices01/appointment-scheduler/internal/handlers"
	"github.com/BruksfildServices01/appointment-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

// Dependencies are built once in main. DB and Redis are optional.
type Dependencies struct {
	Config   *config.Config
	UseCases ucAppointment.Deps
	Location *time.Location
	DB       *gorm.DB
	Redis    *redis.Client
	Gatherer prometheus.Gatherer
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Dependencies) {
	d.UseCases = d.UseCases.WithDefaults()
	if d.Log == nil {
		d.Log = d.UseCases.Log
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORSMiddleware(d.Config.CORSAllowOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.UseCases)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.UseCases)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(d.UseCases)
	listAgendaUC := ucAppointment.NewListAgenda(d.UseCases)
	availabilityUC := ucAppointment.NewGetAvailability(d.UseCases)
	calendarUC := ucAppointment.NewGetCalendarMonth(d.UseCases)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listByDateUC,
		listAgendaUC,
		d.Log,
	)

	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		calendarUC,
		d.UseCases.Store,
		d.Location,
		d.UseCases.Clock,
		d.Log,
	)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"appointments": d.UseCases.Store.Len(),
		})
	})

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/availability", publicHandler.Availability)
		api.GET("/calendar", publicHandler.Calendar)
		api.GET("/calendar.ics", publicHandler.ExportICS)

		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/day", appointmentHandler.ListByDate)

		// ------------------------------
		// Mutations (rate limited when Redis is configured)
		// ------------------------------
		writes := api.Group("/appointments")
		if d.Redis != nil {
			limiter := middleware.NewRedisRateLimiter(
				d.Redis,
				d.Config.RateLimitPerMin,
				time.Minute,
				"scheduler:rl",
				d.Log,
			)
			limiter.OnLimited = d.UseCases.Metrics.RateLimited
			writes.Use(limiter.Middleware())
		}
		{
			writes.POST("", appointmentHandler.Create)
			writes.DELETE("/:id", appointmentHandler.Cancel)
		}

		if d.DB != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Log)
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
