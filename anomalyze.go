// Package anomalyze provides clustering and anomaly detection for numeric
// datasets such as daily financial returns.
//
// Two clustering algorithms partition multi-dimensional feature vectors:
//
//	cfg := anomalyze.DefaultKMeansConfig()
//	cfg.K = 3
//	labels, err := anomalyze.KMeans(data, cfg)
//	// labels[i] is the cluster ID for point i, in [0, K)
//
//	cfg := anomalyze.DefaultDBSCANConfig()
//	cfg.Eps = 0.5
//	labels, err := anomalyze.DBSCAN(data, cfg)
//	// labels[i] is the cluster ID for point i (-1 = noise)
//
// Two independent anomaly detectors flag outlier points in a time series:
//
//	// Rolling-window z-score: flags values deviating from the trailing
//	// local mean by more than threshold standard deviations.
//	indices, err := anomalyze.DetectSlidingWindow(series, 20, 2.0)
//
//	// Robust statistics: ranks values by median/MAD deviation and selects
//	// the most extreme, capped at 5% of the series.
//	indices := anomalyze.DetectRobust(series, 3.0)
//
//	// Target-rate variant: searches for the threshold whose anomaly
//	// fraction lands closest to the requested rate.
//	indices, err := anomalyze.DetectRobustTargetRate(series, 0.03)
//
// All four algorithms are pure, single-pass-per-invocation computations over
// fully materialized in-memory data. They share no state across calls; every
// invocation owns its working buffers.
package anomalyze
