package api

import (
	"errors"
	"fmt"
	"net/http"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/scheduler"
	l2_service "portfoliotracker/internal/service/l2"
	l3_service "portfoliotracker/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	PortfolioService l2_service.PortfolioService
	BenchmarkService l2_service.BenchmarkService
	XIRRService      l2_service.XIRRService
	SyncService      l3_service.SyncService
	Scheduler        scheduler.Service
	CorsOrigins      []string
	// overridden in tests
	today func() time.Time
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(m.CorsOrigins) > 0 {
		corsConfig.AllowOrigins = m.CorsOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "portfolio tracker"})
	})

	router.GET("/portfolio/timeline", m.portfolioTimeline)
	router.GET("/portfolio/summary", m.portfolioSummary)
	router.GET("/portfolio/positions", m.portfolioPositions)
	router.GET("/portfolio/annualized-return", m.annualizedReturn)
	router.GET("/portfolio/metrics", m.portfolioMetrics)

	router.GET("/benchmarks", m.listBenchmarks)
	router.GET("/benchmarks/:key/timeline", m.benchmarkTimeline)

	router.POST("/sync/lots", m.syncLots)
	router.POST("/sync/market-data", m.syncMarketData)

	router.POST("/analyst-ratings/sync", m.syncAnalystRatings)
	router.POST("/analyst-ratings/sync-stale", m.syncStaleAnalystRatings)
	router.GET("/analyst-ratings/status", m.analystRatingStatus)

	router.GET("/scheduler/status", m.schedulerStatus)
	router.POST("/scheduler/trigger", m.triggerSync)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) now() time.Time {
	if m.today != nil {
		return m.today()
	}
	return time.Now().UTC()
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorf("request failed: %s", err.Error())
	} else {
		lg.Warnf("request rejected: %s", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrUnknownBenchmark):
		return http.StatusBadRequest
	case errors.Is(err, scheduler.ErrSyncInProgress):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// logRequestMiddleware attaches a request scoped logger and profile to the
// request context so services log with the request id.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	requestID := uuid.New()

	lg := logger.FromContext(ctx.Request.Context()).With(
		"requestID", requestID.String(),
	)
	profile, endProfile := domain.NewProfile()
	reqCtx := logger.WithLogger(ctx.Request.Context(), lg)
	ctx.Request = ctx.Request.WithContext(domain.WithProfile(reqCtx, profile))
	ctx.Header("X-Request-ID", requestID.String())

	ctx.Next()
	endProfile()

	route := ctx.FullPath()
	if route == "" {
		route = ctx.Request.URL.Path
	}
	lg.Infow(
		"handled request",
		"method", ctx.Request.Method,
		"route", route,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"spans", profile.Summary(),
	)
}
