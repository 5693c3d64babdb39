package api

import (
	"context"
	"errors"
	"net/http"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/scheduler"
	"time"

	"github.com/gin-gonic/gin"
)

var errSchedulerNotConfigured = errors.New("scheduler is not configured")

type jobStatusResponse struct {
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	LastRun   *time.Time `json:"last_run"`
	LastError *string    `json:"last_error"`
	NextRun   *time.Time `json:"next_run"`
}

type schedulerStatusResponse struct {
	Enabled     bool                `json:"enabled"`
	Started     bool                `json:"started"`
	SyncRunning bool                `json:"sync_running"`
	Jobs        []jobStatusResponse `json:"jobs"`
}

func (m ApiHandler) schedulerStatus(c *gin.Context) {
	if m.Scheduler == nil {
		returnErrorJsonCode(errSchedulerNotConfigured, c, http.StatusServiceUnavailable)
		return
	}

	status := m.Scheduler.Status()
	out := schedulerStatusResponse{
		Enabled:     status.Enabled,
		Started:     status.Started,
		SyncRunning: status.SyncRunning,
		Jobs:        []jobStatusResponse{},
	}
	for _, j := range status.Jobs {
		out.Jobs = append(out.Jobs, jobStatusResponse{
			Name:      j.Name,
			Schedule:  j.Schedule,
			LastRun:   j.LastRun,
			LastError: j.LastError,
			NextRun:   j.NextRun,
		})
	}

	c.JSON(200, out)
}

// triggerSync starts a full sync in the background and returns immediately.
func (m ApiHandler) triggerSync(c *gin.Context) {
	if m.Scheduler == nil {
		returnErrorJsonCode(errSchedulerNotConfigured, c, http.StatusServiceUnavailable)
		return
	}
	if m.Scheduler.Status().SyncRunning {
		returnErrorJson(scheduler.ErrSyncInProgress, c)
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		if err := m.Scheduler.TriggerFullSync(ctx); err != nil {
			logger.FromContext(ctx).Errorf("triggered full sync failed: %s", err.Error())
		}
	}()

	c.JSON(http.StatusAccepted, map[string]string{
		"message": "full sync started",
	})
}
