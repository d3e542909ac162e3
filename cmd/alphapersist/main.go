// Command alphapersist computes the persistence diagram of a 3D point
// cloud: OFF file in, one interval per line out.
//
// Usage:
//
//	alphapersist <off-file> <coeff-field-characteristic> <min-persistence>
//
// The characteristic must be a prime > 1; min-persistence is a float
// >= -1.0, where -1.0 disables interval filtering. Output goes to stdout;
// nothing is persisted.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/filtra/alphashape"
	"github.com/katalvlaran/filtra/build"
	"github.com/katalvlaran/filtra/persistence"
	"github.com/katalvlaran/filtra/pointcloud"
)

var (
	verbose bool
	useSqrt bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "alphapersist <off-file> <coeff-field-characteristic> <min-persistence>",
	Short: "Alpha-shape persistence diagrams for 3D point clouds",
	Long: `alphapersist reads a 3D point cloud in OFF format, computes its
alpha-shape decomposition, assembles the filtered simplicial complex, and
prints the persistence diagram over Z/p — one "p dim birth death" line per
surviving interval, with "inf" for features that never die.

min-persistence >= -1.0; the sentinel -1.0 retains every interval.`,
	Args: cobra.ExactArgs(3),
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
	RunE: runDiagram,
}

func runDiagram(cmd *cobra.Command, args []string) error {
	characteristic, err := strconv.Atoi(args[1])
	if err != nil || characteristic <= 0 {
		return fmt.Errorf("coeff-field-characteristic %q is not a positive integer", args[1])
	}
	minPersistence, err := strconv.ParseFloat(args[2], 64)
	if err != nil || minPersistence < persistence.RetainAll {
		return fmt.Errorf("min-persistence %q is not a float >= -1.0", args[2])
	}

	points, err := pointcloud.ReadOFFFile(args[0])
	if err != nil {
		return err
	}
	logger.Debug("point cloud loaded", zap.String("file", args[0]), zap.Int("points", len(points)))

	dec, err := alphashape.Decompose(points)
	if err != nil {
		return err
	}
	logger.Debug("alpha-shape decomposition computed", zap.Int("objects", dec.Len()))

	var opts []build.Option
	if useSqrt {
		opts = append(opts, build.WithSqrtFiltration())
	}
	cx, reg, stats, err := build.Build(dec, opts...)
	if err != nil {
		return err
	}
	logger.Debug("filtered complex assembled",
		zap.Int("vertices", stats.Vertices),
		zap.Int("edges", stats.Edges),
		zap.Int("facets", stats.Facets),
		zap.Int("cells", stats.Cells),
		zap.Int("distinct_vertices", reg.Len()),
		zap.Int("dimension", cx.Dimension()),
		zap.Float64("max_filtration", cx.MaxFiltration()),
	)

	diagram, err := persistence.Compute(cx, characteristic, minPersistence)
	if err != nil {
		return err
	}
	logger.Debug("persistence computed", zap.Int("intervals", len(diagram)))

	return persistence.Fprint(os.Stdout, diagram, characteristic)
}

func main() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&useSqrt, "sqrt", false, "use sqrt(alpha) as filtration value instead of the raw alpha")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
