package main

import (
	"os"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/logger"
)

func main() {
	lg := logger.New()
	lg.Infof("starting api, commit %s", os.Getenv("commit_hash"))

	cfg, err := cmd.LoadConfig("")
	if err != nil {
		lg.Fatal(err)
	}
	deps, err := cmd.InitializeDependencies(cfg)
	if err != nil {
		lg.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	deps.Scheduler.Start()
	err = deps.ApiHandler.StartApi(cfg.Server.Port)
	if err != nil {
		lg.Fatal(err)
	}
}
