package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ielis/kg-covid-19/internal/transform"
	// register the transform sources
	_ "github.com/ielis/kg-covid-19/internal/transform/hpoa"
)

var (
	transformInputDir        string
	transformOutputDir       string
	transformSources         []string
	transformDataFile        string
	transformCompression     string
	transformIncludeExcluded bool
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform raw annotation sources into KGX node/edge TSV pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir := transformInputDir
		if inputDir == "" {
			inputDir = cfg.Transform.InputDir
		}
		outputDir := transformOutputDir
		if outputDir == "" {
			outputDir = cfg.Transform.OutputDir
		}
		includeExcluded := transformIncludeExcluded || cfg.Transform.IncludeExcluded

		tags := transformSources
		if len(tags) == 0 {
			tags = transform.SourceTags()
		}
		if transformDataFile != "" && len(tags) != 1 {
			return fmt.Errorf("--data-file requires exactly one --source")
		}

		logger.Info("transforming sources",
			zap.String("input", inputDir),
			zap.String("output", outputDir),
			zap.Strings("sources", tags))

		for _, tag := range tags {
			ctor, ok := transform.Lookup(tag)
			if !ok {
				return fmt.Errorf("unknown source %q (available: %s)",
					tag, strings.Join(transform.SourceTags(), ", "))
			}
			t := ctor(transform.Options{
				InputDir:        inputDir,
				OutputDir:       outputDir,
				Compression:     transformCompression,
				IncludeExcluded: includeExcluded,
				Logger:          logger,
			})
			if err := t.Run(transformDataFile); err != nil {
				return fmt.Errorf("transforming %s: %w", t.Name(), err)
			}
		}
		return nil
	},
}

func init() {
	transformCmd.Flags().StringVarP(&transformInputDir, "input-dir", "i", "", "directory with raw source files")
	transformCmd.Flags().StringVarP(&transformOutputDir, "output-dir", "o", "", "directory for node/edge TSV output")
	transformCmd.Flags().StringArrayVarP(&transformSources, "source", "s", nil, "source to transform (repeatable; default all)")
	transformCmd.Flags().StringVar(&transformDataFile, "data-file", "", "explicit data file path (single source only)")
	transformCmd.Flags().StringVar(&transformCompression, "compression", "", "input compression: none, gz")
	transformCmd.Flags().BoolVar(&transformIncludeExcluded, "include-excluded", false, "keep rows with negated (NOT) phenotypes")
	rootCmd.AddCommand(transformCmd)
}
