package dataset

import "time"

// TimeUnit is the bucket granularity of a mortality series.
type TimeUnit string

const (
	// TimeUnitWeekly buckets are ISO weeks, dated on their Sunday.
	TimeUnitWeekly TimeUnit = "weekly"

	// TimeUnitMonthly buckets are calendar months, dated on their last day.
	TimeUnitMonthly TimeUnit = "monthly"
)

// MortalityRecord is one all-cause death count for one country and bucket.
type MortalityRecord struct {
	Country        string
	Date           time.Time
	AllCauseDeaths float64
}

// CovidRecord is one daily row of the OWID COVID-19 dataset for one
// country. All value columns may be absent for a given day; nil marks a
// missing value.
type CovidRecord struct {
	Country            string
	Date               time.Time
	CovidDeaths        *float64
	VaccinationPartial *float64
	VaccinationFull    *float64
	VaccinationBooster *float64
	NewTests           *float64
}

// StringencyRecord is one daily lockdown-stringency observation for one
// country.
type StringencyRecord struct {
	Country         string
	Date            time.Time
	StringencyIndex float64
}
