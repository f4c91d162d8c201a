package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// CovidTable holds per-country daily COVID-19 records parsed from the
// OWID COVID dataset, plus the stringency observations carried in the
// same file.
type CovidTable struct {
	records    map[string][]CovidRecord
	stringency map[string][]StringencyRecord
	countries  []string
}

// covidValueColumns are the value columns read from the CSV. Only
// location, date and new_deaths are required; the rest are tolerated as
// absent because OWID drops them for some exports.
var covidValueColumns = []string{
	"new_deaths",
	"stringency_index",
	"people_vaccinated_per_hundred",
	"people_fully_vaccinated_per_hundred",
	"total_boosters_per_hundred",
	"new_tests",
}

// LoadCovid reads the OWID COVID-19 CSV at path.
func LoadCovid(path string) (*CovidTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, missingFileError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, badRowError(path, 1, err)
	}
	cols := indexColumns(header)

	for _, name := range []string{"location", "date", "new_deaths"} {
		if _, ok := cols[name]; !ok {
			return nil, badHeaderError(path, name)
		}
	}

	t := &CovidTable{
		records:    map[string][]CovidRecord{},
		stringency: map[string][]StringencyRecord{},
	}
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, badRowError(path, line, err)
		}

		date, err := time.Parse("2006-01-02", rec[cols["date"]])
		if err != nil {
			return nil, badRowError(path, line, fmt.Errorf("date: %w", err))
		}
		country := rec[cols["location"]]

		values := map[string]*float64{}
		for _, name := range covidValueColumns {
			col, ok := cols[name]
			if !ok {
				continue
			}
			v, ok, err := parseOptionalFloat(rec[col])
			if err != nil {
				return nil, badRowError(path, line, fmt.Errorf("%s: %w", name, err))
			}
			if ok {
				values[name] = &v
			}
		}

		t.records[country] = append(t.records[country], CovidRecord{
			Country:            country,
			Date:               date,
			CovidDeaths:        values["new_deaths"],
			VaccinationPartial: values["people_vaccinated_per_hundred"],
			VaccinationFull:    values["people_fully_vaccinated_per_hundred"],
			VaccinationBooster: values["total_boosters_per_hundred"],
			NewTests:           values["new_tests"],
		})
		if s := values["stringency_index"]; s != nil {
			t.stringency[country] = append(t.stringency[country], StringencyRecord{
				Country:         country,
				Date:            date,
				StringencyIndex: *s,
			})
		}
	}

	t.finish()
	return t, nil
}

// Countries returns the loaded country names in unspecified order.
func (t *CovidTable) Countries() []string {
	return t.countries
}

// HasCountry reports whether the table has records for country.
func (t *CovidTable) HasCountry(country string) bool {
	_, ok := t.records[country]
	return ok
}

// Records returns one country's daily records in chronological order.
func (t *CovidTable) Records(country string) []CovidRecord {
	return t.records[country]
}

// Stringency returns one country's stringency observations in
// chronological order.
func (t *CovidTable) Stringency(country string) []StringencyRecord {
	return t.stringency[country]
}

func (t *CovidTable) finish() {
	for country, recs := range t.records {
		t.countries = append(t.countries, country)
		sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
	}
	for _, recs := range t.stringency {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
	}
	sort.Strings(t.countries)
}
