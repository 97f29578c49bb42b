package perf

import (
	"math"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// Fallback rates for chart construction when a year is missing from
// its table, and the assumed benchmark CAGR for holdings under one
// year (too short for an annual-return window).
const (
	defaultChartBenchmarkReturn = 7.0
	defaultChartInflationRate   = 2.5
	defaultShortHoldBenchCAGR   = 0.08
)

// BenchmarkTable bundles a benchmark's realized annual returns with
// its inception year, the earliest year a chart window may reach.
type BenchmarkTable struct {
	Returns       RateTable
	InceptionYear int
}

// Reconstruct builds a year-by-year indexed growth series for the
// portfolio against a benchmark and against inflation.
//
// Only two real data points exist per position (entry price, current
// price), so the per-position price history is synthetic: each year of
// the path follows the benchmark's actual annual return shifted by the
// position's constant alpha, chosen so that compounding the path over
// the stated holding period reproduces the position's known total
// return. The benchmark and inflation channels are ground truth,
// compounded forward from the table rates. The result is illustrative,
// not historically accurate, and should be presented as such.
//
// The first point is always 0/0/0 and the series always has at least
// two points, even for an empty portfolio.
func Reconstruct(positions []model.Position, bench BenchmarkTable, inflation RateTable, currentYear int) []model.ChartPoint {
	startYear := chartStartYear(positions, bench, currentYear)
	n := currentYear - startYear + 1

	values := make([]float64, n)
	for _, p := range positions {
		accumulatePosition(values, p, bench, startYear, currentYear)
	}

	points := make([]model.ChartPoint, n)
	benchIndex, inflationIndex := 100.0, 100.0
	for i := range points {
		year := startYear + i
		pt := model.ChartPoint{Year: year}
		if i > 0 {
			benchRate := rateOrDefault(bench.Returns, year, defaultChartBenchmarkReturn)
			inflationRate := rateOrDefault(inflation, year, defaultChartInflationRate)
			benchIndex *= 1 + benchRate/100
			inflationIndex *= 1 + inflationRate/100
			pt.BenchmarkPct = round2(benchIndex - 100)
			pt.InflationPct = round2(inflationIndex - 100)
			if values[0] > 0 {
				pt.PortfolioPct = round2(values[i]/values[0]*100 - 100)
			}
		}
		points[i] = pt
	}
	return points
}

// chartStartYear sizes the window: the longest holding period rounded
// up (minimum two years), plus one extra baseline year so the earliest
// real holding year's move is visible, clamped to the benchmark's
// inception year.
func chartStartYear(positions []model.Position, bench BenchmarkTable, currentYear int) int {
	maxYears := 0.0
	for _, p := range positions {
		if p.YearsHeld > maxYears {
			maxYears = p.YearsHeld
		}
	}

	span := int(math.Ceil(maxYears))
	if span < 2 {
		span = 2
	}

	startYear := currentYear - span - 1
	if startYear < bench.InceptionYear {
		startYear = bench.InceptionYear
	}
	if startYear > currentYear-1 {
		startYear = currentYear - 1
	}
	return startYear
}

// accumulatePosition reconstructs the position's synthetic price path
// backward from its current price and adds shares*price per year into
// the portfolio value array. Positions without usable cost/price data,
// or whose path turns non-finite, contribute nothing.
func accumulatePosition(values []float64, p model.Position, bench BenchmarkTable, startYear, currentYear int) {
	if p.AvgCost <= 0 || p.CurrentPrice <= 0 {
		return
	}

	// The position's own annualized return over its stated holding
	// period. Durations of zero are treated as one year to keep the
	// root defined.
	years := p.YearsHeld
	if years <= 0 {
		years = 1
	}
	positionCAGR := math.Pow(p.CurrentPrice/p.AvgCost, 1/years) - 1

	alpha := positionCAGR - benchmarkCAGR(bench, currentYear, p.YearsHeld)

	n := currentYear - startYear + 1
	path := make([]float64, n)
	path[n-1] = p.CurrentPrice
	for i := n - 2; i >= 0; i-- {
		// Stepping back from year i+1: undo that year's benchmark
		// move plus the position's constant alpha.
		rate := rateOrDefault(bench.Returns, startYear+i+1, defaultChartBenchmarkReturn)
		step := 1 + rate/100 + alpha
		if step <= 0 {
			return
		}
		path[i] = path[i+1] / step
		if math.IsNaN(path[i]) || math.IsInf(path[i], 0) {
			return
		}
	}

	for i := range path {
		values[i] += path[i] * p.Shares
	}
}

// benchmarkCAGR computes the benchmark's realized annualized return
// over the trailing floor(yearsHeld)-year window ending at currentYear.
// Holdings under one year have no annual window; they get the fixed
// default.
func benchmarkCAGR(bench BenchmarkTable, currentYear int, yearsHeld float64) float64 {
	window := int(math.Floor(yearsHeld))
	if window < 1 {
		return defaultShortHoldBenchCAGR
	}

	total := 1.0
	for year := currentYear - window + 1; year <= currentYear; year++ {
		rate := rateOrDefault(bench.Returns, year, defaultChartBenchmarkReturn)
		total *= 1 + rate/100
	}
	return math.Pow(total, 1/float64(window)) - 1
}
