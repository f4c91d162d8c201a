package render

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msieczka/covidtoll/internal/dataset"
	"github.com/msieczka/covidtoll/internal/merge"
	"github.com/msieczka/covidtoll/internal/testutil"
)

// monthlyResult builds a small merged table for Chile, 2020, lookback 1.
func monthlyResult(t *testing.T) *merge.Result {
	t.Helper()
	dir := t.TempDir()

	mortPath := testutil.MortalityFixture{
		Unit:  "monthly",
		Years: []int{2019, 2020},
		Rows: []testutil.MortalityRow{
			{Country: "Chile", Date: "2020-01-31", Ordinal: 1, Deaths: map[int]float64{2019: 500, 2020: 600}},
			{Country: "Chile", Date: "2020-02-29", Ordinal: 2, Deaths: map[int]float64{2019: 510, 2020: 620}},
		},
	}.Write(t, dir)
	covidPath := testutil.CovidFixture{
		Rows: []testutil.CovidRow{
			{Country: "Chile", Date: "2020-01-10", Deaths: "3"},
			{Country: "Chile", Date: "2020-01-20", Deaths: "4"},
			{Country: "Chile", Date: "2020-02-05", Deaths: "10"},
		},
	}.Write(t, dir)

	mortality, err := dataset.LoadMortality(mortPath)
	require.NoError(t, err)
	covid, err := dataset.LoadCovid(covidPath)
	require.NoError(t, err)

	res, err := merge.Merge(mortality, covid, merge.Options{Country: "Chile", Year: 2020, Lookback: 1})
	require.NoError(t, err)
	return res
}

func TestWriteCSVGolden(t *testing.T) {
	res := monthlyResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "chile_monthly", buf.Bytes())
}

func TestWriteCSVShape(t *testing.T) {
	res := monthlyResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per aligned date.
	require.Len(t, records, len(res.Rows)+1)
	assert.Equal(t, csvHeader, records[0])

	// Dates strictly increasing.
	for i := 2; i < len(records); i++ {
		assert.Less(t, records[i-1][0], records[i][0])
	}

	// The derived column survives the round trip exactly.
	assert.Equal(t, "593", records[3][3])
	assert.Equal(t, "610", records[4][3])
}

func TestWriteCSVNegativeNonCovidDeaths(t *testing.T) {
	dir := t.TempDir()
	mortPath := testutil.MortalityFixture{
		Unit:  "monthly",
		Years: []int{2020},
		Rows: []testutil.MortalityRow{
			{Country: "Chile", Date: "2020-01-31", Ordinal: 1, Deaths: map[int]float64{2020: 100}},
			{Country: "Chile", Date: "2020-02-29", Ordinal: 2, Deaths: map[int]float64{2020: 100}},
		},
	}.Write(t, dir)
	covidPath := testutil.CovidFixture{
		Rows: []testutil.CovidRow{
			{Country: "Chile", Date: "2020-01-10", Deaths: "130"},
			{Country: "Chile", Date: "2020-02-10", Deaths: "5"},
		},
	}.Write(t, dir)

	mortality, err := dataset.LoadMortality(mortPath)
	require.NoError(t, err)
	covid, err := dataset.LoadCovid(covidPath)
	require.NoError(t, err)

	res, err := merge.Merge(mortality, covid, merge.Options{Country: "Chile", Year: 2020, Lookback: 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "-30", records[1][3], "negative difference written as-is")
	assert.Equal(t, "95", records[2][3])
}

func TestOutputBasename(t *testing.T) {
	assert.Equal(t, "Poland_2020", OutputBasename("Poland", 2020))
	assert.Equal(t, "United_States_2021", OutputBasename("United States", 2021))
}
