// Command cabrouted serves the cab routing engine over HTTP.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cabrouted",
	Short: "Deterministic cab routing engine",
	Long: `cabrouted computes shortest paths with Dijkstra and A* over weighted
road graphs, orders unordered stops with a nearest-neighbor + 2-opt
heuristic, and serves both over an HTTP API with background job
processing for large requests.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
