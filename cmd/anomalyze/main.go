// Package main provides the anomalyze CLI: clustering and anomaly detection
// over numeric CSV data.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantkit/anomalyze"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anomalyze",
		Short: "Cluster feature vectors and flag time-series anomalies",
		Long: `Anomalyze analyzes numeric CSV data.

Commands:
  cluster   Partition feature vectors with k-means or DBSCAN
  detect    Flag anomalous points in a single numeric column`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newClusterCommand())
	rootCmd.AddCommand(newDetectCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clusterCommand holds the configuration for the cluster command.
type clusterCommand struct {
	algorithm string
	output    string
	noHeader  bool

	k        int
	maxIters int
	seed     int64

	eps       float64
	minPoints int
}

func newClusterCommand() *cobra.Command {
	cc := &clusterCommand{}

	cmd := &cobra.Command{
		Use:   "cluster <features.csv>",
		Short: "Partition feature vectors with k-means or DBSCAN",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cc.run(args[0])
		},
	}

	cmd.Flags().StringVarP(&cc.algorithm, "algorithm", "a", "kmeans", "clustering algorithm: kmeans or dbscan")
	cmd.Flags().StringVarP(&cc.output, "output", "o", "clusters.csv", "output CSV path")
	cmd.Flags().BoolVar(&cc.noHeader, "no-header", false, "input has no header row")
	cmd.Flags().IntVarP(&cc.k, "clusters", "k", 3, "number of clusters (kmeans)")
	cmd.Flags().IntVar(&cc.maxIters, "max-iters", 100, "iteration budget (kmeans)")
	cmd.Flags().Int64Var(&cc.seed, "seed", 0, "random seed for centroid init, 0 = time-based (kmeans)")
	cmd.Flags().Float64Var(&cc.eps, "eps", 0.5, "neighborhood radius (dbscan)")
	cmd.Flags().IntVar(&cc.minPoints, "min-points", 5, "minimum neighborhood size (dbscan)")

	return cmd
}

func (cc *clusterCommand) run(path string) error {
	data, header, err := readFeatureCSV(path, !cc.noHeader)
	if err != nil {
		return err
	}

	var labels []int
	switch cc.algorithm {
	case "kmeans":
		cfg := anomalyze.DefaultKMeansConfig()
		cfg.K = cc.k
		cfg.MaxIterations = cc.maxIters
		if cc.seed != 0 {
			cfg.Rand = rand.New(rand.NewSource(cc.seed))
		} else {
			cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		labels, err = anomalyze.KMeans(data, cfg)
	case "dbscan":
		cfg := anomalyze.DBSCANConfig{Eps: cc.eps, MinPoints: cc.minPoints}
		labels, err = anomalyze.DBSCAN(data, cfg)
	default:
		return fmt.Errorf("unknown algorithm %q (want kmeans or dbscan)", cc.algorithm)
	}
	if err != nil {
		return err
	}

	if err := writeClusterCSV(cc.output, header, data, labels); err != nil {
		return err
	}

	counts := map[int]int{}
	for _, l := range labels {
		counts[l]++
	}
	fmt.Fprintf(os.Stderr, "%s: %d points, %d clusters", cc.algorithm, len(labels), countClusters(labels))
	if noise := counts[anomalyze.NoiseLabel]; noise > 0 {
		fmt.Fprintf(os.Stderr, ", %d noise", noise)
	}
	fmt.Fprintf(os.Stderr, " -> %s\n", cc.output)
	return nil
}

func countClusters(labels []int) int {
	seen := map[int]bool{}
	for _, l := range labels {
		if l != anomalyze.NoiseLabel {
			seen[l] = true
		}
	}
	return len(seen)
}

// detectCommand holds the configuration for the detect command.
type detectCommand struct {
	method   string
	output   string
	column   int
	noHeader bool

	windowSize int
	threshold  float64
	targetRate float64
}

func newDetectCommand() *cobra.Command {
	dc := &detectCommand{}

	cmd := &cobra.Command{
		Use:   "detect <series.csv>",
		Short: "Flag anomalous points in a single numeric column",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return dc.run(args[0])
		},
	}

	cmd.Flags().StringVarP(&dc.method, "method", "m", "window", "detection method: window, robust, or rate")
	cmd.Flags().StringVarP(&dc.output, "output", "o", "anomalies.csv", "output CSV path")
	cmd.Flags().IntVarP(&dc.column, "column", "c", 0, "zero-based column index of the series")
	cmd.Flags().BoolVar(&dc.noHeader, "no-header", false, "input has no header row")
	cmd.Flags().IntVarP(&dc.windowSize, "window", "w", 20, "rolling window size (window)")
	cmd.Flags().Float64VarP(&dc.threshold, "threshold", "t", 2.0, "deviation threshold (window, robust)")
	cmd.Flags().Float64Var(&dc.targetRate, "target-rate", 0.03, "target anomaly fraction (rate)")

	return cmd
}

func (dc *detectCommand) run(path string) error {
	series, err := readSeriesCSV(path, dc.column, !dc.noHeader)
	if err != nil {
		return err
	}

	var indices []int
	switch dc.method {
	case "window":
		indices, err = anomalyze.DetectSlidingWindow(series, dc.windowSize, dc.threshold)
	case "robust":
		indices = anomalyze.DetectRobust(series, dc.threshold)
	case "rate":
		indices, err = anomalyze.DetectRobustTargetRate(series, dc.targetRate)
	default:
		return fmt.Errorf("unknown method %q (want window, robust, or rate)", dc.method)
	}
	if err != nil {
		return err
	}

	if err := writeAnomalyCSV(dc.output, series, indices); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s: %d of %d points flagged (%.2f%%) -> %s\n",
		dc.method, len(indices), len(series),
		100*float64(len(indices))/float64(max(len(series), 1)), dc.output)
	return nil
}
