package main

import (
	"context"
	"os"
	"os/signal"
	"reachout/internal/app/deps"
	"reachout/internal/app/services"
	"reachout/internal/core/domain/logging"
	resetmonthlycounts "reachout/internal/core/services/reset_monthly_counts"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.MonthlyResetCheckPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic monthly count reset.",
		logging.Entry("periodMinutes", (deps.Config.MonthlyResetCheckPeriod).Minutes()),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic monthly count reset.")
			break loop
		case <-ticker.C:
			log.Info(context.Background(), "Launching monthly count reset service.")
			_, err := services.ResetMonthlyCounts.Run(context.Background(), resetmonthlycounts.Input{})
			if err != nil {
				log.Error(context.Background(), "Monthly count reset returned an error.", logging.Entry("err", err))
			}
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
