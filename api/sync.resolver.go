package api

import (
	"fmt"
	"net/http"
	"portfoliotracker/internal/logger"
	l3_service "portfoliotracker/internal/service/l3"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultSyncDaysBack = 7
	maxSyncDaysBack     = 3650
)

type syncLotsResponse struct {
	Securities  int   `json:"securities"`
	LotsAdded   int   `json:"lots_added"`
	LotsSkipped int   `json:"lots_skipped"`
	LotsDeleted int64 `json:"lots_deleted"`
}

func (m ApiHandler) syncLots(c *gin.Context) {
	result, err := m.SyncService.SyncLots(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to sync lots: %w", err), c)
		return
	}

	c.JSON(200, syncLotsResponse{
		Securities:  result.Securities,
		LotsAdded:   result.LotsAdded,
		LotsSkipped: result.LotsSkipped,
		LotsDeleted: result.LotsDeleted,
	})
}

type syncResultResponse struct {
	Items       int      `json:"items"`
	PricesAdded int      `json:"prices_added"`
	Failed      []string `json:"failed"`
}

func newSyncResultResponse(r *l3_service.SyncResult) syncResultResponse {
	failed := r.Failed
	if failed == nil {
		failed = []string{}
	}
	return syncResultResponse{
		Items:       r.Items,
		PricesAdded: r.PricesAdded,
		Failed:      failed,
	}
}

type syncMarketDataResponse struct {
	DaysBack   int                `json:"days_back"`
	Securities syncResultResponse `json:"securities"`
	Benchmarks syncResultResponse `json:"benchmarks"`
}

func (m ApiHandler) syncMarketData(c *gin.Context) {
	daysBack := defaultSyncDaysBack
	if s := c.Query("days_back"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxSyncDaysBack {
			returnErrorJsonCode(fmt.Errorf("days_back must be between 1 and %d", maxSyncDaysBack), c, http.StatusBadRequest)
			return
		}
		daysBack = n
	}

	ctx := c.Request.Context()
	if err := m.SyncService.SyncFX(ctx, daysBack); err != nil {
		logger.FromContext(ctx).Warnf("fx sync incomplete: %s", err.Error())
	}

	securities, err := m.SyncService.SyncMarketData(ctx, daysBack)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to sync market data: %w", err), c)
		return
	}
	benchmarks, err := m.SyncService.SyncBenchmarks(ctx, daysBack)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to sync benchmarks: %w", err), c)
		return
	}

	c.JSON(200, syncMarketDataResponse{
		DaysBack:   daysBack,
		Securities: newSyncResultResponse(securities),
		Benchmarks: newSyncResultResponse(benchmarks),
	})
}
