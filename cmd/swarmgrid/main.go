// Command swarmgrid batch-processes grid-reconfiguration scenarios: for
// every scenario file discovered under a scenarios root, it runs the
// safety check, pivot-visit, and destination-extension stages, writing
// one result file per scenario and an append-only CSV timing log per
// map directory.
package main

import (
	"log"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	scenariosRoot string
	resultsRoot   string
	workers       int
	recordHistory bool

	rootCmd = &cobra.Command{
		Use:   "swarmgrid",
		Short: "Batch runner for grid multi-agent reconfiguration scenarios",
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run every scenario found under --scenarios, writing results under --results",
		RunE:  runBatch,
	}
)

func init() {
	runCmd.Flags().StringVar(&scenariosRoot, "scenarios", "scenarios",
		"root directory containing one subdirectory per map, each holding scenario .txt files")
	runCmd.Flags().StringVar(&resultsRoot, "results", "results",
		"root directory results are written to, mirroring --scenarios' layout")
	runCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(),
		"maximum number of scenarios processed concurrently")
	runCmd.Flags().BoolVar(&recordHistory, "history", false,
		"keep every intermediate configuration, not just the three milestones (memory-heavy on large scenarios)")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("swarmgrid: %v", err)
	}
}
