// Command heatmapdist compares persistence heat maps stored on disk: it
// loads every map given on the command line and prints the all-pairs
// L^p distance matrix.
//
// Usage:
//
//	heatmapdist <p> <file> <file> [files...]
//
// p >= 1 selects the L^p norm; p = -1 selects the sup norm. The matrix
// goes to stdout and to a file named "distance" in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/filtra/heatmap"
)

const distanceFile = "distance"

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "heatmapdist <p> <file> <file> [files...]",
	Short: "All-pairs L^p distances between persistence heat maps",
	Long: `heatmapdist loads two or more persistence heat maps (as written by
heatmap.Save) and prints the symmetric matrix of pairwise L^p distances,
one row per line. Use p = -1 for the sup norm.

The matrix is written to stdout and to a file named "distance".`,
	Args: cobra.MinimumNArgs(3),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("logger init: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDistances,
}

func runDistances(cmd *cobra.Command, args []string) error {
	p, err := strconv.ParseFloat(args[0], 64)
	if err != nil || (p < 1 && p != heatmap.InfNorm) {
		return fmt.Errorf("p %q must be >= 1, or -1 for the sup norm", args[0])
	}

	maps := make([]*heatmap.HeatMap, 0, len(args)-1)
	for _, path := range args[1:] {
		hm, errLoad := heatmap.Load(path)
		if errLoad != nil {
			return errLoad
		}
		logger.Debug("heat map loaded", zap.String("file", path))
		maps = append(maps, hm)
	}

	matrix, err := heatmap.DistanceMatrix(maps, p)
	if err != nil {
		return err
	}

	f, err := os.Create(distanceFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", distanceFile, err)
	}
	defer f.Close()

	return heatmap.FprintMatrix(io.MultiWriter(os.Stdout, f), matrix)
}

func main() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
