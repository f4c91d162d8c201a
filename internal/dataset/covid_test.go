package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msieczka/covidtoll/internal/testutil"
)

func covidFixture() testutil.CovidFixture {
	return testutil.CovidFixture{
		Rows: []testutil.CovidRow{
			// Out of order on purpose; the loader must sort.
			{Country: "Poland", Date: "2020-01-03", Deaths: "5", Stringency: "10.5", VaccPartial: "1.5", Tests: "50"},
			{Country: "Poland", Date: "2020-01-01", Deaths: "10", Tests: "100"},
			{Country: "Poland", Date: "2020-01-05", Deaths: "5"},
			{Country: "Atlantis", Date: "2020-01-01", Deaths: "1"},
		},
	}
}

func TestLoadCovid(t *testing.T) {
	path := covidFixture().Write(t, t.TempDir())

	table, err := LoadCovid(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Atlantis", "Poland"}, table.Countries())
	assert.True(t, table.HasCountry("Poland"))
	assert.False(t, table.HasCountry("Narnia"))

	recs := table.Records("Poland")
	require.Len(t, recs, 3)
	assert.Equal(t, "2020-01-01", recs[0].Date.Format("2006-01-02"), "records sorted by date")

	require.NotNil(t, recs[0].CovidDeaths)
	assert.Equal(t, 10.0, *recs[0].CovidDeaths)
	require.NotNil(t, recs[0].NewTests)
	assert.Equal(t, 100.0, *recs[0].NewTests)
	assert.Nil(t, recs[0].VaccinationPartial, "empty cell is a missing value")

	require.NotNil(t, recs[1].VaccinationPartial)
	assert.Equal(t, 1.5, *recs[1].VaccinationPartial)
	assert.Nil(t, recs[2].NewTests)
}

func TestLoadCovidStringency(t *testing.T) {
	path := covidFixture().Write(t, t.TempDir())
	table, err := LoadCovid(path)
	require.NoError(t, err)

	str := table.Stringency("Poland")
	require.Len(t, str, 1, "only days with a stringency value")
	assert.Equal(t, "2020-01-03", str[0].Date.Format("2006-01-02"))
	assert.Equal(t, 10.5, str[0].StringencyIndex)

	assert.Empty(t, table.Stringency("Atlantis"))
}

func TestLoadCovidToleratesAbsentOptionalColumns(t *testing.T) {
	path := writeRaw(t, t.TempDir(),
		"location,date,new_deaths\n"+
			"Poland,2020-01-01,10\n")

	table, err := LoadCovid(path)
	require.NoError(t, err)
	recs := table.Records("Poland")
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].CovidDeaths)
	assert.Nil(t, recs[0].NewTests)
	assert.Empty(t, table.Stringency("Poland"))
}

func TestLoadCovidMissingRequiredColumn(t *testing.T) {
	path := writeRaw(t, t.TempDir(), "location,date\n")

	_, err := LoadCovid(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "new_deaths")
}

func TestLoadCovidMissingFile(t *testing.T) {
	_, err := LoadCovid("/nonexistent/owid-covid-data.csv")
	require.Error(t, err)
	assert.True(t, IsMissingInputFile(err))
}

func TestLoadCovidBadRow(t *testing.T) {
	path := writeRaw(t, t.TempDir(),
		"location,date,new_deaths\n"+
			"Poland,2020-01-01,ten\n")

	_, err := LoadCovid(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAD_ROW")
	assert.Contains(t, err.Error(), "new_deaths")
}
