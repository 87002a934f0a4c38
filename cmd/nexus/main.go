// Command nexus runs network analysis from the command line.
//
// It turns a mention document (the JSON output of an upstream NLP stage)
// into a weighted co-occurrence network with centrality metrics, without
// needing the server or worker running.
//
// Usage:
//
//	nexus analyze --file mentions.json                 # Print network JSON
//	nexus analyze --file mentions.json --out net.json  # Write to file
//	nexus analyze --file mentions.json --sentiment     # Score edge sentiment
package main

import (
	"os"

	"github.com/nexus-nlp/nexus/internal/util"
	"github.com/nexus-nlp/nexus/pkg/logger"
	"github.com/nexus-nlp/nexus/pkg/logger/console"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Co-occurrence network analysis",
	Long:  `Build and inspect entity co-occurrence networks from mention documents.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.LoadEnv()
		debug := util.GetEnvBool("DEBUG", false)
		consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
			Debug: debug,
		})
		logger.Init(consoleLogger)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
