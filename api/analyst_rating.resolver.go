package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type analystRatingSyncResponse struct {
	Status     string   `json:"status"`
	Securities int      `json:"securities_processed"`
	Updated    int      `json:"ratings_updated"`
	NoCoverage int      `json:"no_coverage"`
	Failed     []string `json:"failed"`
}

func (m ApiHandler) syncAnalystRatings(c *gin.Context) {
	m.runAnalystRatingSync(c, false)
}

func (m ApiHandler) syncStaleAnalystRatings(c *gin.Context) {
	m.runAnalystRatingSync(c, true)
}

func (m ApiHandler) runAnalystRatingSync(c *gin.Context, staleOnly bool) {
	result, err := m.SyncService.SyncAnalystRatings(c.Request.Context(), staleOnly)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to sync analyst ratings: %w", err), c)
		return
	}

	status := "success"
	if len(result.Failed) > 0 {
		status = "partial_success"
	}
	failed := result.Failed
	if failed == nil {
		failed = []string{}
	}

	c.JSON(200, analystRatingSyncResponse{
		Status:     status,
		Securities: result.Securities,
		Updated:    result.Updated,
		NoCoverage: result.NoCoverage,
		Failed:     failed,
	})
}

type analystRatingStatusResponse struct {
	TotalRatings int        `json:"total_ratings"`
	StaleRatings int        `json:"stale_ratings"`
	FreshRatings int        `json:"fresh_ratings"`
	OldestUpdate *time.Time `json:"oldest_update"`
	NewestUpdate *time.Time `json:"newest_update"`
}

func (m ApiHandler) analystRatingStatus(c *gin.Context) {
	status, err := m.SyncService.AnalystRatingStatus(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get analyst rating status: %w", err), c)
		return
	}

	c.JSON(200, analystRatingStatusResponse{
		TotalRatings: status.Total,
		StaleRatings: status.Stale,
		FreshRatings: status.Total - status.Stale,
		OldestUpdate: status.OldestUpdate,
		NewestUpdate: status.NewestUpdate,
	})
}
