package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ielis/kg-covid-19/internal/db"
	"github.com/ielis/kg-covid-19/internal/kgx"
)

var (
	loadNodesPath string
	loadEdgesPath string
	loadDBPath    string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a transformed node/edge TSV pair into a SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := kgx.ReadNodeFile(loadNodesPath)
		if err != nil {
			return fmt.Errorf("reading nodes: %w", err)
		}
		edges, err := kgx.ReadEdgeFile(loadEdgesPath)
		if err != nil {
			return fmt.Errorf("reading edges: %w", err)
		}

		d, err := db.OpenDB(loadDBPath)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.LoadGraph(nodes, edges); err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}

		nodeCount, err := d.NodeCount()
		if err != nil {
			return err
		}
		edgeCount, err := d.EdgeCount()
		if err != nil {
			return err
		}
		logger.Info("graph loaded",
			zap.String("db", loadDBPath),
			zap.Int("nodes", nodeCount),
			zap.Int("edges", edgeCount))
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadNodesPath, "nodes", "", "path to <source>_nodes.tsv")
	loadCmd.Flags().StringVar(&loadEdgesPath, "edges", "", "path to <source>_edges.tsv")
	loadCmd.Flags().StringVar(&loadDBPath, "db", "graph.db", "path to the SQLite database")
	loadCmd.MarkFlagRequired("nodes")
	loadCmd.MarkFlagRequired("edges")
	rootCmd.AddCommand(loadCmd)
}
