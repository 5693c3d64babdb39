package main

import (
	"fmt"
	"os"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/util"
	"time"

	"github.com/spf13/cobra"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file (defaults to $TRACKER_CONFIG)")
}

var rootCmd = &cobra.Command{
	Use:          "tracker",
	Short:        "portfolio tracker",
	Long:         `Values a portfolio of tax lots in EUR over time and compares it against benchmarks.`,
	SilenceUsage: true,
}

func loadDependencies() (*cmd.Dependencies, error) {
	cfg, err := cmd.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return cmd.InitializeDependencies(cfg)
}

// parseRange defaults to the year ending today.
func parseRange(start, end string) (time.Time, time.Time, error) {
	endDate := util.Today()
	if end != "" {
		d, err := util.ParseDate(end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --end: %w", err)
		}
		endDate = d
	}
	startDate := endDate.AddDate(-1, 0, 0)
	if start != "" {
		d, err := util.ParseDate(start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --start: %w", err)
		}
		startDate = d
	}
	return startDate, endDate, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
