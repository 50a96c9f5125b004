package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ielis/kg-covid-19/internal/kgx"
)

var (
	validateNodesPath string
	validateEdgesPath string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a node/edge TSV pair: every edge subject must have a node",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := kgx.ReadNodeFile(validateNodesPath)
		if err != nil {
			return fmt.Errorf("reading nodes: %w", err)
		}
		edges, err := kgx.ReadEdgeFile(validateEdgesPath)
		if err != nil {
			return fmt.Errorf("reading edges: %w", err)
		}

		report := kgx.ValidateGraph(nodes, edges)

		fmt.Printf("\n  Nodes: %d  Edges: %d\n", report.NodeCount, report.EdgeCount)
		fmt.Printf("  Distinct subjects: %d  Distinct objects: %d\n",
			report.DistinctSubjects, report.DistinctObjects)

		if report.Valid() {
			fmt.Println("  All edge subjects resolve to a node.")
			fmt.Println()
			return nil
		}

		fmt.Printf("  %d dangling subjects (edge source with no node):\n", len(report.DanglingSubjects))
		limit := 10
		if len(report.DanglingSubjects) < limit {
			limit = len(report.DanglingSubjects)
		}
		for _, s := range report.DanglingSubjects[:limit] {
			fmt.Printf("    - %s\n", s)
		}
		if len(report.DanglingSubjects) > limit {
			fmt.Printf("    ... and %d more\n", len(report.DanglingSubjects)-limit)
		}
		fmt.Println()
		return fmt.Errorf("%d edge subjects have no matching node", len(report.DanglingSubjects))
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateNodesPath, "nodes", "", "path to <source>_nodes.tsv")
	validateCmd.Flags().StringVar(&validateEdgesPath, "edges", "", "path to <source>_edges.tsv")
	validateCmd.MarkFlagRequired("nodes")
	validateCmd.MarkFlagRequired("edges")
	rootCmd.AddCommand(validateCmd)
}
