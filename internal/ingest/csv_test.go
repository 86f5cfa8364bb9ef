package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordolab/ordo/internal/config"
)

func testReader(t *testing.T, unit string) *Reader {
	t.Helper()
	r, err := NewReader(config.IngestConfig{
		Columns: config.ColumnsConfig{
			Method: "method",
			Size:   "num_instances",
			Time:   "time_ms",
			Run:    "run",
		},
		TimeUnit: unit,
	})
	require.NoError(t, err)
	return r
}

func TestReadMapsColumns(t *testing.T) {
	data := `method,percentage,num_instances,run,time_ms,avg_time_ms
binning,10,1000,1,42.5,42.5
binning,20,2000,1,85.0,85.0
grouping,10,1000,1,9.75,9.75
`
	obs, err := testReader(t, "ms").Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, obs, 3)

	assert.Equal(t, "binning", obs[0].Method)
	assert.Equal(t, 1000, obs[0].Size)
	assert.Equal(t, 42.5, obs[0].TimeMS)
	assert.Equal(t, 1, obs[0].Run)
	assert.Equal(t, "grouping", obs[2].Method)
}

func TestReadConvertsUnits(t *testing.T) {
	data := "method,num_instances,time_ms,run\nm,100,2000000,1\n"

	obs, err := testReader(t, "ns").Read(strings.NewReader(data))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, obs[0].TimeMS, 1e-12)

	obs, err = testReader(t, "s").Read(strings.NewReader(data))
	require.NoError(t, err)
	assert.InDelta(t, 2e9, obs[0].TimeMS, 1e-3)
}

func TestReadMissingColumn(t *testing.T) {
	data := "method,size\nm,100\n"
	_, err := testReader(t, "ms").Read(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_instances")
}

func TestReadBadValues(t *testing.T) {
	data := "method,num_instances,time_ms\nm,abc,5\n"
	_, err := testReader(t, "ms").Read(strings.NewReader(data))
	require.Error(t, err)

	data = "method,num_instances,time_ms\nm,100,xyz\n"
	_, err = testReader(t, "ms").Read(strings.NewReader(data))
	require.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	_, err := testReader(t, "ms").Read(strings.NewReader(""))
	require.Error(t, err)

	// Header only, no rows.
	_, err = testReader(t, "ms").Read(strings.NewReader("method,num_instances,time_ms\n"))
	require.Error(t, err)
}

func TestNewReaderBadUnit(t *testing.T) {
	_, err := NewReader(config.IngestConfig{
		Columns:  config.ColumnsConfig{Method: "m", Size: "s", Time: "t"},
		TimeUnit: "h",
	})
	require.Error(t, err)
}
