package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// wideBaseYear is the year whose rows carry the full set of per-year
// columns in the wide mortality table. Rows dated in later years only
// repeat a subset, so the loader keys everything off the base-year rows.
const wideBaseYear = 2020

var deathsColRe = regexp.MustCompile(`^deaths_(\d{4})_all_ages$`)

// MortalityTable holds per-country all-cause mortality series parsed from
// the wide excess-mortality CSV.
type MortalityTable struct {
	series    map[string]*MortalitySeries
	countries []string
}

// MortalitySeries is the all-cause mortality of one country: a fixed set
// of week or month ordinals, each with a death count per year where the
// source has one.
type MortalitySeries struct {
	Country  string
	Unit     TimeUnit
	Ordinals []int // ascending
	Years    []int // years with at least one value, ascending

	deaths map[int]map[int]float64 // ordinal -> year -> count
}

// LoadMortality reads the wide excess-mortality CSV at path.
func LoadMortality(path string) (*MortalityTable, error) {
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

	required := []string{"location", "date", "time", "time_unit"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, badHeaderError(path, name)
		}
	}

	// Map each deaths_YYYY_all_ages column to its year.
	yearCols := map[int]int{}
	for i, name := range header {
		if m := deathsColRe.FindStringSubmatch(name); m != nil {
			y, _ := strconv.Atoi(m[1])
			yearCols[y] = i
		}
	}
	if len(yearCols) == 0 {
		return nil, badHeaderError(path, "deaths_YYYY_all_ages")
	}

	t := &MortalityTable{series: map[string]*MortalitySeries{}}
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
		if date.Year() != wideBaseYear {
			continue
		}

		ordinal, err := parseOrdinal(rec[cols["time"]])
		if err != nil {
			return nil, badRowError(path, line, fmt.Errorf("time: %w", err))
		}

		unit := TimeUnit(rec[cols["time_unit"]])
		if unit != TimeUnitWeekly && unit != TimeUnitMonthly {
			return nil, badRowError(path, line, fmt.Errorf("unsupported time_unit %q", unit))
		}

		country := rec[cols["location"]]
		s := t.series[country]
		if s == nil {
			s = &MortalitySeries{Country: country, Unit: unit, deaths: map[int]map[int]float64{}}
			t.series[country] = s
		}

		byYear := s.deaths[ordinal]
		if byYear == nil {
			byYear = map[int]float64{}
			s.deaths[ordinal] = byYear
		}
		for year, col := range yearCols {
			v, ok, err := parseOptionalFloat(rec[col])
			if err != nil {
				return nil, badRowError(path, line, fmt.Errorf("deaths_%d_all_ages: %w", year, err))
			}
			if ok {
				byYear[year] = v
			}
		}
	}

	t.finish()
	return t, nil
}

// Countries returns the loaded country names in unspecified order.
func (t *MortalityTable) Countries() []string {
	return t.countries
}

// HasCountry reports whether the table has a series for country.
func (t *MortalityTable) HasCountry(country string) bool {
	_, ok := t.series[country]
	return ok
}

// Series returns one country's mortality series.
func (t *MortalityTable) Series(country string) (*MortalitySeries, bool) {
	s, ok := t.series[country]
	return s, ok
}

// Value returns the death count for one (year, ordinal) bucket.
func (s *MortalitySeries) Value(year, ordinal int) (float64, bool) {
	v, ok := s.deaths[ordinal][year]
	return v, ok
}

// HasYear reports whether the series has any value for the given year.
func (s *MortalitySeries) HasYear(year int) bool {
	for _, byYear := range s.deaths {
		if _, ok := byYear[year]; ok {
			return true
		}
	}
	return false
}

// Records flattens one year of the series into dated records, in
// chronological order. Ordinals without a value for that year, and
// ordinals that do not exist in it (week 53 of a 52-week year), are
// skipped.
func (s *MortalitySeries) Records(year int) []MortalityRecord {
	var recs []MortalityRecord
	for _, ord := range s.Ordinals {
		v, ok := s.deaths[ord][year]
		if !ok {
			continue
		}
		date, ok := BucketDate(s.Unit, year, ord)
		if !ok {
			continue
		}
		recs = append(recs, MortalityRecord{Country: s.Country, Date: date, AllCauseDeaths: v})
	}
	return recs
}

func (t *MortalityTable) finish() {
	for country, s := range t.series {
		t.countries = append(t.countries, country)

		years := map[int]bool{}
		for ord, byYear := range s.deaths {
			s.Ordinals = append(s.Ordinals, ord)
			for y := range byYear {
				years[y] = true
			}
		}
		sort.Ints(s.Ordinals)
		for y := range years {
			s.Years = append(s.Years, y)
		}
		sort.Ints(s.Years)
	}
	sort.Strings(t.countries)
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return cols
}

func parseOrdinal(s string) (int, error) {
	// The time column is an integer week or month number, but some
	// exports render it as a float.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseOptionalFloat(s string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
