// Package refdata holds the static historical reference tables the
// calculation core consumes: US annual inflation rates and realized
// annual total returns for the selectable benchmarks. These are fixed
// historical records maintained by hand, not fetched or computed.
package refdata

import (
	"github.com/jkoster/portfolio-performance-backend/internal/model"
	"github.com/jkoster/portfolio-performance-backend/internal/perf"
)

// latestYear is the most recent year covered by all tables below.
const latestYear = 2025

// inceptionYear is the earliest year any chart window may start; the
// tables carry data back to this year for every benchmark.
const inceptionYear = 1990

// usInflationRates is annual US CPI inflation, percent per year.
var usInflationRates = map[int]float64{
	1990: 5.4, 1991: 4.2, 1992: 3.0, 1993: 3.0, 1994: 2.6,
	1995: 2.8, 1996: 3.0, 1997: 2.3, 1998: 1.6, 1999: 2.2,
	2000: 3.4, 2001: 2.8, 2002: 1.6, 2003: 2.3, 2004: 2.7,
	2005: 3.4, 2006: 3.2, 2007: 2.8, 2008: 3.8, 2009: -0.4,
	2010: 1.6, 2011: 3.2, 2012: 2.1, 2013: 1.5, 2014: 1.6,
	2015: 0.1, 2016: 1.3, 2017: 2.1, 2018: 2.4, 2019: 1.8,
	2020: 1.2, 2021: 4.7, 2022: 8.0, 2023: 4.1, 2024: 2.9,
	2025: 2.7,
}

// sp500Returns is the S&P 500 annual total return, percent per year.
var sp500Returns = map[int]float64{
	1990: -3.1, 1991: 30.5, 1992: 7.6, 1993: 10.1, 1994: 1.3,
	1995: 37.6, 1996: 23.0, 1997: 33.4, 1998: 28.6, 1999: 21.0,
	2000: -9.1, 2001: -11.9, 2002: -22.1, 2003: 28.7, 2004: 10.9,
	2005: 4.9, 2006: 15.8, 2007: 5.5, 2008: -37.0, 2009: 26.5,
	2010: 15.1, 2011: 2.1, 2012: 16.0, 2013: 32.4, 2014: 13.7,
	2015: 1.4, 2016: 12.0, 2017: 21.8, 2018: -4.4, 2019: 31.5,
	2020: 18.4, 2021: 28.7, 2022: -18.1, 2023: 26.3, 2024: 25.0,
	2025: 15.1,
}

// nasdaqReturns is the NASDAQ Composite annual return, percent per year.
var nasdaqReturns = map[int]float64{
	1990: -17.8, 1991: 56.8, 1992: 15.5, 1993: 14.7, 1994: -3.2,
	1995: 39.9, 1996: 22.7, 1997: 21.6, 1998: 39.6, 1999: 85.6,
	2000: -39.3, 2001: -21.1, 2002: -31.5, 2003: 50.0, 2004: 8.6,
	2005: 1.4, 2006: 9.5, 2007: 9.8, 2008: -40.5, 2009: 43.9,
	2010: 16.9, 2011: -1.8, 2012: 15.9, 2013: 38.3, 2014: 13.4,
	2015: 5.7, 2016: 7.5, 2017: 28.2, 2018: -3.9, 2019: 35.2,
	2020: 43.6, 2021: 21.4, 2022: -33.1, 2023: 43.4, 2024: 28.6,
	2025: 19.0,
}

// dowReturns is the Dow Jones Industrial Average annual price return,
// percent per year.
var dowReturns = map[int]float64{
	1990: -4.3, 1991: 20.3, 1992: 4.2, 1993: 13.7, 1994: 2.1,
	1995: 33.5, 1996: 26.0, 1997: 22.6, 1998: 16.1, 1999: 25.2,
	2000: -6.2, 2001: -7.1, 2002: -16.8, 2003: 25.3, 2004: 3.1,
	2005: -0.6, 2006: 16.3, 2007: 6.4, 2008: -33.8, 2009: 18.8,
	2010: 11.0, 2011: 5.5, 2012: 7.3, 2013: 26.5, 2014: 7.5,
	2015: -2.2, 2016: 13.4, 2017: 25.1, 2018: -5.6, 2019: 22.3,
	2020: 7.2, 2021: 18.7, 2022: -8.8, 2023: 13.7, 2024: 12.9,
	2025: 8.9,
}

// Inflation returns the US inflation rate table.
func Inflation() perf.RateTable {
	return perf.RateTable{LatestYear: latestYear, Rates: usInflationRates}
}

// BenchmarkFor returns the annual-return table for the chosen
// benchmark. Unknown values fall back to the S&P 500 table.
func BenchmarkFor(b model.Benchmark) perf.BenchmarkTable {
	rates := sp500Returns
	switch b {
	case model.BenchmarkNasdaq:
		rates = nasdaqReturns
	case model.BenchmarkDow:
		rates = dowReturns
	}
	return perf.BenchmarkTable{
		Returns:       perf.RateTable{LatestYear: latestYear, Rates: rates},
		InceptionYear: inceptionYear,
	}
}
