package scheduler

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/internal/config"
	"portfoliotracker/internal/logger"
	l3_service "portfoliotracker/internal/service/l3"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	FullSyncJob      = "full_sync"
	PriceRefreshJob  = "price_refresh"
	AnalystRatingJob = "analyst_ratings"
)

var ErrSyncInProgress = errors.New("a sync is already running")

type JobStatus struct {
	Name      string
	Schedule  string
	LastRun   *time.Time
	LastError *string
	NextRun   *time.Time
}

type Status struct {
	Enabled     bool
	Started     bool
	SyncRunning bool
	Jobs        []JobStatus
}

// Service runs the periodic market data syncs. It is built once by the
// entrypoint, which owns Start and Stop.
type Service interface {
	Start()
	Stop()
	Status() Status
	TriggerFullSync(ctx context.Context) error
}

type jobState struct {
	name     string
	schedule string
	entryIDs []cron.EntryID
	lastRun  *time.Time
	lastErr  *string
}

type serviceHandler struct {
	cron        *cron.Cron
	baseCtx     context.Context
	SyncService l3_service.SyncService
	Config      config.SchedulerConfig
	MarketData  config.MarketDataConfig

	mu      sync.Mutex
	jobs    map[string]*jobState
	started bool
	busy    atomic.Bool
}

func New(
	baseCtx context.Context,
	syncService l3_service.SyncService,
	schedulerConfig config.SchedulerConfig,
	marketDataConfig config.MarketDataConfig,
) (Service, error) {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	h := &serviceHandler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		baseCtx:     baseCtx,
		SyncService: syncService,
		Config:      schedulerConfig,
		MarketData:  marketDataConfig,
		jobs:        map[string]*jobState{},
	}

	err := h.add(FullSyncJob, []string{schedulerConfig.FullSync}, h.fullSync)
	if err != nil {
		return nil, err
	}
	err = h.add(PriceRefreshJob, schedulerConfig.PriceRefresh, h.priceRefresh)
	if err != nil {
		return nil, err
	}
	err = h.add(AnalystRatingJob, []string{schedulerConfig.AnalystRatings}, h.analystRatings)
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (h *serviceHandler) add(name string, specs []string, job func(context.Context) error) error {
	state := &jobState{
		name:     name,
		entryIDs: []cron.EntryID{},
	}
	for _, spec := range specs {
		if spec == "" {
			continue
		}
		id, err := h.cron.AddFunc(spec, func() {
			_ = h.run(h.baseCtx, name, job)
		})
		if err != nil {
			return fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
		}
		state.entryIDs = append(state.entryIDs, id)
		if state.schedule != "" {
			state.schedule += ", "
		}
		state.schedule += spec
	}
	h.jobs[name] = state
	return nil
}

func (h *serviceHandler) Start() {
	if !h.Config.Enabled {
		logger.FromContext(h.baseCtx).Info("scheduler disabled")
		return
	}

	h.mu.Lock()
	h.started = true
	h.mu.Unlock()

	h.cron.Start()
	logger.FromContext(h.baseCtx).Info("scheduler started")

	if h.Config.RunOnStartup {
		go func() {
			_ = h.TriggerFullSync(h.baseCtx)
		}()
	}
}

func (h *serviceHandler) Stop() {
	h.mu.Lock()
	started := h.started
	h.started = false
	h.mu.Unlock()
	if !started {
		return
	}

	ctx := h.cron.Stop()
	<-ctx.Done()
	logger.FromContext(h.baseCtx).Info("scheduler stopped")
}

func (h *serviceHandler) TriggerFullSync(ctx context.Context) error {
	return h.run(ctx, FullSyncJob, h.fullSync)
}

// run executes one job with the configured timeout. Only one job runs at a
// time; an overlapping run is skipped.
func (h *serviceHandler) run(ctx context.Context, name string, job func(context.Context) error) error {
	log := logger.FromContext(ctx).With("job", name)
	if !h.busy.CompareAndSwap(false, true) {
		log.Warn("skipping run, another sync is in progress")
		return ErrSyncInProgress
	}
	defer h.busy.Store(false)

	if h.Config.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Config.JobTimeout)
		defer cancel()
	}

	start := time.Now()
	log.Info("job started")
	err := job(ctx)

	h.mu.Lock()
	if state, ok := h.jobs[name]; ok {
		now := start.UTC()
		state.lastRun = &now
		state.lastErr = nil
		if err != nil {
			msg := err.Error()
			state.lastErr = &msg
		}
	}
	h.mu.Unlock()

	if err != nil {
		log.Errorf("job failed after %s: %s", time.Since(start).Round(time.Second), err.Error())
		return err
	}
	log.Infof("job finished in %s", time.Since(start).Round(time.Second))
	return nil
}

func (h *serviceHandler) fullSync(ctx context.Context) error {
	if _, err := h.SyncService.SyncLots(ctx); err != nil {
		return err
	}
	return h.syncMarketData(ctx, h.MarketData.SyncDaysBack)
}

func (h *serviceHandler) priceRefresh(ctx context.Context) error {
	return h.syncMarketData(ctx, h.MarketData.RefreshDaysBack)
}

func (h *serviceHandler) analystRatings(ctx context.Context) error {
	_, err := h.SyncService.SyncAnalystRatings(ctx, true)
	return err
}

func (h *serviceHandler) syncMarketData(ctx context.Context, daysBack int) error {
	// rates are needed by both price valuation and benchmarks, but a failure
	// here should not block price syncing
	if err := h.SyncService.SyncFX(ctx, daysBack); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.FromContext(ctx).Warnf("fx sync incomplete: %s", err.Error())
	}
	if _, err := h.SyncService.SyncMarketData(ctx, daysBack); err != nil {
		return err
	}
	if _, err := h.SyncService.SyncBenchmarks(ctx, daysBack); err != nil {
		return err
	}
	return nil
}

func (h *serviceHandler) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := Status{
		Enabled:     h.Config.Enabled,
		Started:     h.started,
		SyncRunning: h.busy.Load(),
		Jobs:        []JobStatus{},
	}
	for _, state := range h.jobs {
		js := JobStatus{
			Name:      state.name,
			Schedule:  state.schedule,
			LastRun:   state.lastRun,
			LastError: state.lastErr,
		}
		if h.started {
			for _, id := range state.entryIDs {
				next := h.cron.Entry(id).Next
				if next.IsZero() {
					continue
				}
				if js.NextRun == nil || next.Before(*js.NextRun) {
					n := next
					js.NextRun = &n
				}
			}
		}
		out.Jobs = append(out.Jobs, js)
	}
	sort.Slice(out.Jobs, func(i, j int) bool {
		return out.Jobs[i].Name < out.Jobs[j].Name
	})

	return out
}
