package main

import (
	"context"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/util"

	"github.com/spf13/cobra"
)

var (
	startFlag string
	endFlag   string
)

func init() {
	for _, c := range []*cobra.Command{timelineCmd, xirrCmd} {
		c.Flags().StringVar(&startFlag, "start", "", "start date, YYYY-MM-DD")
		c.Flags().StringVar(&endFlag, "end", "", "end date, YYYY-MM-DD (defaults to today)")
		rootCmd.AddCommand(c)
	}
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "print the daily EUR valuation of the portfolio",
	RunE: func(_ *cobra.Command, _ []string) error {
		start, end, err := parseRange(startFlag, endFlag)
		if err != nil {
			return err
		}
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		points, err := deps.PortfolioService.ComputeTimeline(context.Background(), start, end)
		if err != nil {
			return err
		}
		util.Pprint(points)
		return nil
	},
}

var xirrCmd = &cobra.Command{
	Use:   "xirr",
	Short: "print the money weighted annualized return",
	RunE: func(_ *cobra.Command, _ []string) error {
		start, end, err := parseRange(startFlag, endFlag)
		if err != nil {
			return err
		}
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		result, err := deps.XIRRService.ComputeXIRR(context.Background(), start, end)
		if err != nil {
			return err
		}
		util.Pprint(result)
		return nil
	},
}
