package scheduler

import (
	"context"
	"errors"
	"portfoliotracker/internal/config"
	l3_service "portfoliotracker/internal/service/l3"
	mock_l3_service "portfoliotracker/internal/service/l3/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() (config.SchedulerConfig, config.MarketDataConfig) {
	return config.SchedulerConfig{
			Enabled:        true,
			FullSync:       "0 8 * * *",
			PriceRefresh:   []string{"0 15 * * *", "0 22 * * *"},
			AnalystRatings: "0 6 * * 1,4",
			JobTimeout:     time.Minute,
		}, config.MarketDataConfig{
			SyncDaysBack:    730,
			RefreshDaysBack: 7,
		}
}

func TestScheduler_TriggerFullSync(t *testing.T) {
	ctx := context.Background()

	t.Run("runs lots then market data then benchmarks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncService := mock_l3_service.NewMockSyncService(ctrl)
		schedulerConfig, marketDataConfig := testConfig()
		svc, err := New(ctx, syncService, schedulerConfig, marketDataConfig)
		require.NoError(t, err)

		gomock.InOrder(
			syncService.EXPECT().SyncLots(gomock.Any()).Return(&l3_service.SyncLotsResult{}, nil),
			syncService.EXPECT().SyncFX(gomock.Any(), 730).Return(nil),
			syncService.EXPECT().SyncMarketData(gomock.Any(), 730).Return(&l3_service.SyncResult{}, nil),
			syncService.EXPECT().SyncBenchmarks(gomock.Any(), 730).Return(&l3_service.SyncResult{}, nil),
		)

		require.NoError(t, svc.TriggerFullSync(ctx))

		status := svc.Status()
		require.True(t, status.Enabled)
		require.False(t, status.SyncRunning)
		require.Len(t, status.Jobs, 3)
		require.Equal(t, AnalystRatingJob, status.Jobs[0].Name)
		require.Equal(t, FullSyncJob, status.Jobs[1].Name)
		require.NotNil(t, status.Jobs[1].LastRun)
		require.Nil(t, status.Jobs[1].LastError)
		require.Equal(t, PriceRefreshJob, status.Jobs[2].Name)
		require.Equal(t, "0 15 * * *, 0 22 * * *", status.Jobs[2].Schedule)
		require.Nil(t, status.Jobs[2].LastRun)
	})

	t.Run("fx failure does not stop price sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncService := mock_l3_service.NewMockSyncService(ctrl)
		schedulerConfig, marketDataConfig := testConfig()
		svc, err := New(ctx, syncService, schedulerConfig, marketDataConfig)
		require.NoError(t, err)

		syncService.EXPECT().SyncLots(gomock.Any()).Return(&l3_service.SyncLotsResult{}, nil)
		syncService.EXPECT().SyncFX(gomock.Any(), gomock.Any()).Return(errors.New("frankfurter down"))
		syncService.EXPECT().SyncMarketData(gomock.Any(), gomock.Any()).Return(&l3_service.SyncResult{}, nil)
		syncService.EXPECT().SyncBenchmarks(gomock.Any(), gomock.Any()).Return(&l3_service.SyncResult{}, nil)

		require.NoError(t, svc.TriggerFullSync(ctx))
	})

	t.Run("records the last error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncService := mock_l3_service.NewMockSyncService(ctrl)
		schedulerConfig, marketDataConfig := testConfig()
		svc, err := New(ctx, syncService, schedulerConfig, marketDataConfig)
		require.NoError(t, err)

		syncService.EXPECT().SyncLots(gomock.Any()).Return(nil, errors.New("lots.csv missing"))

		require.Error(t, svc.TriggerFullSync(ctx))
		status := svc.Status()
		require.NotNil(t, status.Jobs[1].LastError)
		require.Equal(t, "lots.csv missing", *status.Jobs[1].LastError)
	})

	t.Run("overlapping runs are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncService := mock_l3_service.NewMockSyncService(ctrl)
		schedulerConfig, marketDataConfig := testConfig()
		svc, err := New(ctx, syncService, schedulerConfig, marketDataConfig)
		require.NoError(t, err)

		started := make(chan struct{})
		release := make(chan struct{})
		syncService.EXPECT().SyncLots(gomock.Any()).DoAndReturn(func(ctx context.Context) (*l3_service.SyncLotsResult, error) {
			close(started)
			<-release
			return nil, errors.New("stopped")
		})

		done := make(chan error)
		go func() {
			done <- svc.TriggerFullSync(ctx)
		}()
		<-started

		require.True(t, svc.Status().SyncRunning)
		require.ErrorIs(t, svc.TriggerFullSync(ctx), ErrSyncInProgress)

		close(release)
		require.Error(t, <-done)
	})
}

func TestScheduler_analystRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock_l3_service.NewMockSyncService(ctrl)
	schedulerConfig, marketDataConfig := testConfig()
	svc, err := New(context.Background(), syncService, schedulerConfig, marketDataConfig)
	require.NoError(t, err)
	h := svc.(*serviceHandler)

	syncService.EXPECT().
		SyncAnalystRatings(gomock.Any(), true).
		Return(&l3_service.AnalystRatingSyncResult{Securities: 2, Updated: 2}, nil)

	require.NoError(t, h.run(context.Background(), AnalystRatingJob, h.analystRatings))
	status := svc.Status()
	require.Equal(t, "0 6 * * 1,4", status.Jobs[0].Schedule)
	require.NotNil(t, status.Jobs[0].LastRun)
}

func TestScheduler_New(t *testing.T) {
	schedulerConfig, marketDataConfig := testConfig()
	schedulerConfig.FullSync = "not a cron"
	_, err := New(context.Background(), nil, schedulerConfig, marketDataConfig)
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	schedulerConfig, marketDataConfig := testConfig()
	svc, err := New(context.Background(), nil, schedulerConfig, marketDataConfig)
	require.NoError(t, err)

	svc.Start()
	status := svc.Status()
	require.True(t, status.Started)
	for _, job := range status.Jobs {
		require.NotNil(t, job.NextRun)
		require.Equal(t, time.UTC, job.NextRun.Location())
	}
	svc.Stop()
	require.False(t, svc.Status().Started)
}
