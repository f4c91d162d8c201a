package merge

import (
	"sort"
	"time"

	"github.com/msieczka/covidtoll/internal/dataset"
)

// Options selects what to merge.
type Options struct {
	Country  string
	Year     int
	Lookback int // prior years of all-cause mortality context
}

// Row is one aligned bucket of the merged table. Nil marks a value the
// sources do not have for that bucket. NonCovidDeaths is the exact,
// unclamped difference AllCauseDeaths - CovidDeaths and is only set when
// both inputs are present; it can go negative when attributed COVID-19
// deaths exceed the all-cause count for a bucket.
type Row struct {
	Date    time.Time
	Year    int // bucket year; for weekly series the ISO year
	Ordinal int // week or month number within Year

	AllCauseDeaths *float64
	CovidDeaths    *float64
	NonCovidDeaths *float64

	BaselineMin  *float64
	BaselineMean *float64
	BaselineMax  *float64

	StringencyIndex    *float64
	VaccinationPartial *float64
	VaccinationFull    *float64
	VaccinationBooster *float64
	NewTests           *float64
}

// ColumnRange annotates which date range a column has values for.
type ColumnRange struct {
	Column string
	From   time.Time
	To     time.Time
}

// Result is the merged table for one country and target year.
type Result struct {
	Country       string
	Year          int
	Unit          dataset.TimeUnit
	BaselineYears []int // lookback years contributing to the baseline
	Rows          []Row // unique dates, strictly chronological
	Coverage      []ColumnRange
}

// TargetRows returns the rows of the target year.
func (r *Result) TargetRows() []Row {
	var rows []Row
	for _, row := range r.Rows {
		if row.Year == r.Year {
			rows = append(rows, row)
		}
	}
	return rows
}

// Merge aligns the two loaded tables for one country and year.
//
// The country must be present in both sources; the mortality source is
// checked first, so a country absent from it reports against the
// all-cause dataset even when the COVID-19 dataset has it. The target
// year must have at least one all-cause mortality value after country
// filtering.
func Merge(mortality *dataset.MortalityTable, covid *dataset.CovidTable, opts Options) (*Result, error) {
	if opts.Lookback < 0 {
		opts.Lookback = 0
	}

	series, ok := mortality.Series(opts.Country)
	if !ok {
		return nil, NewUnknownCountryError(opts.Country, "all-cause mortality")
	}
	if !covid.HasCountry(opts.Country) {
		return nil, NewUnknownCountryError(opts.Country, "COVID-19")
	}

	targetMortality := series.Records(opts.Year)
	if len(targetMortality) == 0 {
		return nil, NewNoDataForYearError(opts.Country, opts.Year)
	}

	res := &Result{
		Country: opts.Country,
		Year:    opts.Year,
		Unit:    series.Unit,
	}

	// Context rows for the lookback years, mortality only.
	for y := opts.Year - opts.Lookback; y < opts.Year; y++ {
		if series.HasYear(y) {
			res.BaselineYears = append(res.BaselineYears, y)
		}
		for _, rec := range series.Records(y) {
			v := rec.AllCauseDeaths
			_, ord := dataset.Ordinal(series.Unit, rec.Date)
			res.Rows = append(res.Rows, Row{
				Date:           rec.Date,
				Year:           y,
				Ordinal:        ord,
				AllCauseDeaths: &v,
			})
		}
	}

	// Target-year rows: outer join of the mortality buckets and the
	// resampled COVID-19 buckets, so a trailing week of daily data past
	// the mortality series still shows up.
	buckets := resampleCovid(covid.Records(opts.Country), covid.Stringency(opts.Country), series.Unit, opts.Year)

	ordinals := map[int]bool{}
	for _, rec := range targetMortality {
		_, ord := dataset.Ordinal(series.Unit, rec.Date)
		ordinals[ord] = true
	}
	for ord := range buckets {
		ordinals[ord] = true
	}

	for _, ord := range sortedKeys(ordinals) {
		date, ok := dataset.BucketDate(series.Unit, opts.Year, ord)
		if !ok {
			continue
		}
		row := Row{Date: date, Year: opts.Year, Ordinal: ord}

		if v, ok := series.Value(opts.Year, ord); ok {
			row.AllCauseDeaths = &v
		}
		if b := buckets[ord]; b != nil {
			row.CovidDeaths = b.covidDeaths
			row.StringencyIndex = b.stringency
			row.VaccinationPartial = b.vaccPartial
			row.VaccinationFull = b.vaccFull
			row.VaccinationBooster = b.vaccBooster
			row.NewTests = b.tests
		}
		if row.AllCauseDeaths != nil && row.CovidDeaths != nil {
			d := *row.AllCauseDeaths - *row.CovidDeaths
			row.NonCovidDeaths = &d
		}
		row.BaselineMin, row.BaselineMean, row.BaselineMax = baseline(series, res.BaselineYears, ord)

		res.Rows = append(res.Rows, row)
	}

	sort.Slice(res.Rows, func(i, j int) bool { return res.Rows[i].Date.Before(res.Rows[j].Date) })
	res.Coverage = coverage(res.Rows)
	return res, nil
}

// baseline computes the min, mean and max all-cause death count for one
// bucket ordinal across the lookback years that have a value for it.
func baseline(series *dataset.MortalitySeries, years []int, ordinal int) (min, mean, max *float64) {
	var lo, hi, sum float64
	n := 0
	for _, y := range years {
		v, ok := series.Value(y, ordinal)
		if !ok {
			continue
		}
		if n == 0 || v < lo {
			lo = v
		}
		if n == 0 || v > hi {
			hi = v
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil, nil, nil
	}
	avg := sum / float64(n)
	return &lo, &avg, &hi
}

// coverage records the first and last date each value column is present
// for.
func coverage(rows []Row) []ColumnRange {
	columns := []struct {
		name  string
		value func(*Row) *float64
	}{
		{"all_cause_deaths", func(r *Row) *float64 { return r.AllCauseDeaths }},
		{"covid_deaths", func(r *Row) *float64 { return r.CovidDeaths }},
		{"non_covid_deaths", func(r *Row) *float64 { return r.NonCovidDeaths }},
		{"baseline_min", func(r *Row) *float64 { return r.BaselineMin }},
		{"baseline_mean", func(r *Row) *float64 { return r.BaselineMean }},
		{"baseline_max", func(r *Row) *float64 { return r.BaselineMax }},
		{"stringency_index", func(r *Row) *float64 { return r.StringencyIndex }},
		{"vaccination_pct_partial", func(r *Row) *float64 { return r.VaccinationPartial }},
		{"vaccination_pct_full", func(r *Row) *float64 { return r.VaccinationFull }},
		{"vaccination_pct_booster", func(r *Row) *float64 { return r.VaccinationBooster }},
		{"new_tests", func(r *Row) *float64 { return r.NewTests }},
	}

	var ranges []ColumnRange
	for _, col := range columns {
		var from, to time.Time
		found := false
		for i := range rows {
			if col.value(&rows[i]) == nil {
				continue
			}
			if !found {
				from = rows[i].Date
				found = true
			}
			to = rows[i].Date
		}
		if found {
			ranges = append(ranges, ColumnRange{Column: col.name, From: from, To: to})
		}
	}
	return ranges
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
