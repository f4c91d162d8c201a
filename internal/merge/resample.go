package merge

import (
	"github.com/msieczka/covidtoll/internal/dataset"
)

// covidBucket accumulates one target-year bucket of resampled daily
// COVID-19 data. Counts (deaths, tests) are summed over the bucket;
// level series (stringency, vaccination percentages) keep their last
// observed value, since summing a percentage over a week is meaningless.
type covidBucket struct {
	covidDeaths *float64
	stringency  *float64
	vaccPartial *float64
	vaccFull    *float64
	vaccBooster *float64
	tests       *float64
}

// resampleCovid buckets one country's daily records into the mortality
// granularity, keeping only buckets of the target year. For weekly
// series the bucket year is the ISO year, mirroring how the mortality
// source assigns week numbers.
func resampleCovid(recs []dataset.CovidRecord, stringency []dataset.StringencyRecord, unit dataset.TimeUnit, year int) map[int]*covidBucket {
	buckets := map[int]*covidBucket{}

	get := func(ord int) *covidBucket {
		b := buckets[ord]
		if b == nil {
			b = &covidBucket{}
			buckets[ord] = b
		}
		return b
	}

	for _, rec := range recs {
		bucketYear, ord := dataset.Ordinal(unit, rec.Date)
		if bucketYear != year {
			continue
		}
		b := get(ord)
		addSample(&b.covidDeaths, rec.CovidDeaths)
		addSample(&b.tests, rec.NewTests)
		keepLast(&b.vaccPartial, rec.VaccinationPartial)
		keepLast(&b.vaccFull, rec.VaccinationFull)
		keepLast(&b.vaccBooster, rec.VaccinationBooster)
	}

	for _, rec := range stringency {
		bucketYear, ord := dataset.Ordinal(unit, rec.Date)
		if bucketYear != year {
			continue
		}
		v := rec.StringencyIndex
		get(ord).stringency = &v
	}

	return buckets
}

// addSample adds a daily sample into a running bucket sum. A nil sample
// leaves the sum untouched; a bucket with no samples stays nil rather
// than becoming a fabricated zero.
func addSample(acc **float64, v *float64) {
	if v == nil {
		return
	}
	if *acc == nil {
		c := *v
		*acc = &c
	} else {
		**acc += *v
	}
}

// keepLast keeps the most recent non-missing sample. Records arrive in
// chronological order, so the last write wins.
func keepLast(acc **float64, v *float64) {
	if v == nil {
		return
	}
	c := *v
	*acc = &c
}
