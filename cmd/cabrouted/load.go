package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devu90197/CabDriverAgent/core"
	"github.com/devu90197/CabDriverAgent/internal/store"
)

var loadOpts struct {
	dbPath string
	name   string
}

// datasetFile is the on-disk JSON shape accepted by the load command.
type datasetFile struct {
	Nodes []core.Node `json:"nodes"`
	Edges []core.Edge `json:"edges"`
}

var loadCmd = &cobra.Command{
	Use:   "load <file.json>",
	Short: "Import a road-network dataset from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadOpts.dbPath, "db", "data/cabrouted.db", "SQLite database path")
	loadCmd.Flags().StringVar(&loadOpts.name, "name", "default", "dataset name")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var ds datasetFile
	if err := json.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("invalid dataset file: %w", err)
	}

	st, err := store.New(loadOpts.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveDataset(cmd.Context(), loadOpts.name, ds.Nodes, ds.Edges); err != nil {
		return err
	}

	fmt.Printf("imported dataset %q: %d nodes, %d edges\n", loadOpts.name, len(ds.Nodes), len(ds.Edges))
	return nil
}
