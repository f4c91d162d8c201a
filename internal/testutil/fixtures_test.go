package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMortalityFixtureCSV(t *testing.T) {
	f := MortalityFixture{
		Unit:  "weekly",
		Years: []int{2019, 2020},
		Rows: []MortalityRow{
			{Country: "Poland", Date: "2020-01-05", Ordinal: 1, Deaths: map[int]float64{2019: 1400.5, 2020: 2000}},
			{Country: "Poland", Date: "2020-01-12", Ordinal: 2, Deaths: map[int]float64{2020: 2100}},
		},
	}

	want := "location,date,time,time_unit,deaths_2019_all_ages,deaths_2020_all_ages\n" +
		"Poland,2020-01-05,1,weekly,1400.5,2000\n" +
		"Poland,2020-01-12,2,weekly,,2100\n"
	assert.Equal(t, want, f.CSV())
}

func TestCovidFixtureCSV(t *testing.T) {
	f := CovidFixture{
		Rows: []CovidRow{
			{Country: "Poland", Date: "2020-01-01", Deaths: "10", Tests: "100"},
		},
	}

	want := "location,date,new_deaths,stringency_index," +
		"people_vaccinated_per_hundred,people_fully_vaccinated_per_hundred," +
		"total_boosters_per_hundred,new_tests\n" +
		"Poland,2020-01-01,10,,,,,100\n"
	assert.Equal(t, want, f.CSV())
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := CovidFixture{}.Write(t, dir)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "location,date,new_deaths")
}
