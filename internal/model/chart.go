package model

import "fmt"

// Benchmark selects which market index the chart series is built against.
type Benchmark string

const (
	BenchmarkSP500  Benchmark = "sp500"
	BenchmarkNasdaq Benchmark = "nasdaq"
	BenchmarkDow    Benchmark = "dow"
)

// ParseBenchmark converts a request parameter into a Benchmark.
// An empty string defaults to the S&P 500.
func ParseBenchmark(s string) (Benchmark, error) {
	switch Benchmark(s) {
	case BenchmarkSP500, BenchmarkNasdaq, BenchmarkDow:
		return Benchmark(s), nil
	case "":
		return BenchmarkSP500, nil
	default:
		return "", fmt.Errorf("unknown benchmark: %q", s)
	}
}

// ChartPoint is one year's entry in a reconstructed growth series.
// Each channel is cumulative percent growth relative to the series'
// first point, which is always 0 for all three channels.
type ChartPoint struct {
	Year         int     `json:"year"`
	PortfolioPct float64 `json:"portfolioPct"`
	BenchmarkPct float64 `json:"benchmarkPct"`
	InflationPct float64 `json:"inflationPct"`
}
