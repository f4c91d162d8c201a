// Package testutil provides CSV fixture builders shared by tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// MortalityFixture builds wide excess-mortality CSV content.
type MortalityFixture struct {
	Unit  string // "weekly" or "monthly"
	Years []int  // per-year deaths_YYYY_all_ages columns, in header order
	Rows  []MortalityRow
}

// MortalityRow is one bucket row of a mortality fixture. Deaths maps a
// year to its count; years absent from the map render as empty cells.
type MortalityRow struct {
	Country string
	Date    string // base-year bucket date, e.g. "2020-01-05"
	Ordinal int
	Deaths  map[int]float64
}

// CSV renders the fixture.
func (f MortalityFixture) CSV() string {
	var b strings.Builder
	b.WriteString("location,date,time,time_unit")
	for _, y := range f.Years {
		fmt.Fprintf(&b, ",deaths_%d_all_ages", y)
	}
	b.WriteByte('\n')
	for _, row := range f.Rows {
		fmt.Fprintf(&b, "%s,%s,%d,%s", row.Country, row.Date, row.Ordinal, f.Unit)
		for _, y := range f.Years {
			b.WriteByte(',')
			if v, ok := row.Deaths[y]; ok {
				b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write writes the fixture to dir and returns its path.
func (f MortalityFixture) Write(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "excess_mortality.csv", f.CSV())
}

// CovidFixture builds OWID COVID-19 CSV content.
type CovidFixture struct {
	Rows []CovidRow
}

// CovidRow is one daily row of a COVID fixture. Cells are raw CSV
// values; an empty string renders as a missing value.
type CovidRow struct {
	Country     string
	Date        string
	Deaths      string
	Stringency  string
	VaccPartial string
	VaccFull    string
	VaccBooster string
	Tests       string
}

// CSV renders the fixture.
func (f CovidFixture) CSV() string {
	var b strings.Builder
	b.WriteString("location,date,new_deaths,stringency_index," +
		"people_vaccinated_per_hundred,people_fully_vaccinated_per_hundred," +
		"total_boosters_per_hundred,new_tests\n")
	for _, row := range f.Rows {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s,%s\n",
			row.Country, row.Date, row.Deaths, row.Stringency,
			row.VaccPartial, row.VaccFull, row.VaccBooster, row.Tests)
	}
	return b.String()
}

// Write writes the fixture to dir and returns its path.
func (f CovidFixture) Write(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "owid-covid-data.csv", f.CSV())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
