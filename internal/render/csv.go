package render

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/msieczka/covidtoll/internal/merge"
)

// csvHeader is the fixed column order of the CSV extract.
var csvHeader = []string{
	"date",
	"all_cause_deaths",
	"covid_deaths",
	"non_covid_deaths",
	"baseline_min",
	"baseline_mean",
	"baseline_max",
	"stringency_index",
	"vaccination_pct_partial",
	"vaccination_pct_full",
	"vaccination_pct_booster",
	"new_tests",
}

// WriteCSV writes the merged table as CSV, one row per aligned date in
// chronological order. Missing values render as empty cells; numbers are
// written with full precision so the non-COVID subtraction survives a
// round trip exactly.
func WriteCSV(w io.Writer, res *merge.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range res.Rows {
		row := &res.Rows[i]
		rec := []string{
			row.Date.Format("2006-01-02"),
			cell(row.AllCauseDeaths),
			cell(row.CovidDeaths),
			cell(row.NonCovidDeaths),
			cell(row.BaselineMin),
			cell(row.BaselineMean),
			cell(row.BaselineMax),
			cell(row.StringencyIndex),
			cell(row.VaccinationPartial),
			cell(row.VaccinationFull),
			cell(row.VaccinationBooster),
			cell(row.NewTests),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// OutputBasename is the shared stem of the emitted files, e.g.
// "United_States_2020" for country "United States" and year 2020.
func OutputBasename(country string, year int) string {
	return strings.ReplaceAll(country, " ", "_") + "_" + strconv.Itoa(year)
}
