package main

import (
	"os"

	"github.com/carson-networks/budget-snapshot/internal/commands"
	"github.com/carson-networks/budget-snapshot/internal/config"
	"github.com/carson-networks/budget-snapshot/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	app := commands.NewApp(logger, envConfig)
	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("budget-snapshot.Run")
	}
}
