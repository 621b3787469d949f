package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jmehdipour/radius-admin/internal/config"
	"github.com/jmehdipour/radius-admin/internal/http/middleware"
	"github.com/jmehdipour/radius-admin/internal/metrics"
	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/jmehdipour/radius-admin/internal/service/provisioning"
	"github.com/jmehdipour/radius-admin/internal/util"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, mysqlDB, clickhouseDB *sqlx.DB, rds *redis.Client) *Server {
	// repos (MySQL)
	customersRepo := repository.NewCustomersRepository(mysqlDB)
	radiusRepo := repository.NewRadiusRepository()
	profilesRepo := repository.NewProfilesRepository(mysqlDB)
	nasRepo := repository.NewNASRepository(mysqlDB)
	billingRepo := repository.NewBillingRepository(mysqlDB)
	outboxRepo := repository.NewOutboxRepository(mysqlDB)
	statsRepo := repository.NewStatsRepository(mysqlDB)

	// repos (ClickHouse)
	sessionsRepo := repository.NewSessionsRepository(clickhouseDB)

	// services
	provSvc := provisioning.New(
		mysqlDB,
		customersRepo,
		radiusRepo,
		profilesRepo,
		billingRepo,
		outboxRepo,
	)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(
		echoMid.Recover(),
		echoMid.Logger(),
		echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{Generator: util.NewULID}),
	)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// profile catalog feeds both the display view and the add_user dropdown
	e.GET("/service_profiles", listProfilesHandler(profilesRepo))

	// middlewares
	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          rds,
		RPS:            cfg.RateLimit.RPS,
		KeyPrefix:      "rl:ip:",
		Window:         time.Second,
		RetryAfterHint: true,
	})

	// routes: the admin UI posts form-encoded actions, all answered 200 with
	// a {success, message, ...} envelope
	api := e.Group("/api", rlMW)
	api.POST("/add_user", addUserHandler(provSvc))
	api.POST("/get_users", getUsersHandler(customersRepo))
	api.POST("/delete_user", deleteUserHandler(provSvc))
	api.POST("/add_nas", addNASHandler(nasRepo))
	api.POST("/get_nas", getNASHandler(nasRepo))
	api.POST("/get_stats", getStatsHandler(statsRepo))
	api.POST("/get_billing", getBillingHandler(billingRepo))
	api.GET("/customers/:id/billing", customerBillingHandler(billingRepo))
	api.GET("/reports/sessions", listSessionsHandler(sessionsRepo))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	log.Printf("http: listening on %s", addr)
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
