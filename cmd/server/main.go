package main

import (
	"github.com/lattice-kg/lattice/internal/server"
	"github.com/lattice-kg/lattice/internal/util"
	"github.com/lattice-kg/lattice/pkg/logger"
	"github.com/lattice-kg/lattice/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Prefix: "lattice",
	})
	logger.Init(consoleLogger)

	server.Init()
}
