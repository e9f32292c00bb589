package anomalyze

import (
	"math/rand"
	"testing"
)

func generateBenchData(n, dims int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, dims)
		for j := range data[i] {
			data[i][j] = rng.Float64() * 100
		}
	}
	return data
}

func generateBenchSeries(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	series := make([]float64, n)
	for i := range series {
		series[i] = rng.NormFloat64()
	}
	return series
}

func benchKMeans(b *testing.B, n int) {
	b.Helper()
	data := generateBenchData(n, 3)
	cfg := DefaultKMeansConfig()
	cfg.MaxIterations = 20
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg.Rand = rand.New(rand.NewSource(7))
		if _, err := KMeans(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKMeans_100(b *testing.B)  { benchKMeans(b, 100) }
func BenchmarkKMeans_1000(b *testing.B) { benchKMeans(b, 1000) }

func benchDBSCAN(b *testing.B, n int) {
	b.Helper()
	data := generateBenchData(n, 3)
	cfg := DBSCANConfig{Eps: 5.0, MinPoints: 5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DBSCAN(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDBSCAN_100(b *testing.B)  { benchDBSCAN(b, 100) }
func BenchmarkDBSCAN_1000(b *testing.B) { benchDBSCAN(b, 1000) }

func benchDetectRobust(b *testing.B, n int) {
	b.Helper()
	series := generateBenchSeries(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DetectRobust(series, 3.0)
	}
}

func BenchmarkDetectRobust_1000(b *testing.B)  { benchDetectRobust(b, 1000) }
func BenchmarkDetectRobust_10000(b *testing.B) { benchDetectRobust(b, 10000) }

func benchDetectSlidingWindow(b *testing.B, n int) {
	b.Helper()
	series := generateBenchSeries(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DetectSlidingWindow(series, 20, 2.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDetectSlidingWindow_1000(b *testing.B)  { benchDetectSlidingWindow(b, 1000) }
func BenchmarkDetectSlidingWindow_10000(b *testing.B) { benchDetectSlidingWindow(b, 10000) }
