package main

import (
	"github.com/nexus-nlp/nexus/internal/server"
	"github.com/nexus-nlp/nexus/internal/util"
	"github.com/nexus-nlp/nexus/pkg/logger"
	"github.com/nexus-nlp/nexus/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
