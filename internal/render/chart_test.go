package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msieczka/covidtoll/internal/merge"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestChartRendersPNG(t *testing.T) {
	res := monthlyResult(t)

	png, err := Chart(res, ChartOptions{Width: 1200, Height: 600})
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestChartRejectsTooFewRows(t *testing.T) {
	res := &merge.Result{Country: "Chile", Year: 2020}

	_, err := Chart(res, ChartOptions{Width: 1200, Height: 600})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 rows")
}
