package main

import (
	"context"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/util"

	"github.com/spf13/cobra"
)

var (
	daysBack  int
	staleOnly bool
)

func init() {
	syncMarketDataCmd.Flags().IntVar(&daysBack, "days-back", 7, "number of calendar days to refresh")
	syncAnalystRatingsCmd.Flags().BoolVar(&staleOnly, "stale-only", false, "only refresh ratings past analyst_ratings.stale_after")
	syncCmd.AddCommand(syncLotsCmd)
	syncCmd.AddCommand(syncMarketDataCmd)
	syncCmd.AddCommand(syncAnalystRatingsCmd)
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "pull lots, market data or analyst ratings from upstream sources",
}

var syncLotsCmd = &cobra.Command{
	Use:   "lots",
	Short: "replace stored lots with the brokerage export",
	RunE: func(_ *cobra.Command, _ []string) error {
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		result, err := deps.SyncService.SyncLots(context.Background())
		if err != nil {
			return err
		}
		util.Pprint(result)
		return nil
	},
}

var syncMarketDataCmd = &cobra.Command{
	Use:   "market-data",
	Short: "refresh exchange rates, security prices and benchmark prices",
	RunE: func(_ *cobra.Command, _ []string) error {
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := logger.WithLogger(context.Background(), logger.New())
		if err := deps.SyncService.SyncFX(ctx, daysBack); err != nil {
			logger.FromContext(ctx).Warnf("fx sync incomplete: %s", err.Error())
		}
		securities, err := deps.SyncService.SyncMarketData(ctx, daysBack)
		if err != nil {
			return err
		}
		benchmarks, err := deps.SyncService.SyncBenchmarks(ctx, daysBack)
		if err != nil {
			return err
		}

		util.Pprint(map[string]interface{}{
			"securities": securities,
			"benchmarks": benchmarks,
		})
		return nil
	},
}

var syncAnalystRatingsCmd = &cobra.Command{
	Use:   "analyst-ratings",
	Short: "refresh the cached analyst consensus per security",
	RunE: func(_ *cobra.Command, _ []string) error {
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		ctx := logger.WithLogger(context.Background(), logger.New())
		result, err := deps.SyncService.SyncAnalystRatings(ctx, staleOnly)
		if err != nil {
			return err
		}
		util.Pprint(result)
		return nil
	},
}
