package co2eq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LoadScenario(t *testing.T) {
	dir := writeScenarioDir(t, 30,
		[NumSpecies]float64{0, 10, 1, 2, 3, 4, 5},
		[NumSpecies]float64{0, 0.5, 0.1, 0.2, 0.3, 0.4, 0.5},
		100)

	resp, emis, err := LoadScenario(dir)
	assert.NoError(t, err)
	assert.Equal(t, 30, len(resp.Years))
	assert.Equal(t, 1940, resp.Years[0])
	assert.Equal(t, 30, len(emis.CO2))
	assert.InDelta(t, 100.0, emis.CO2[0], 1e-12)

	// Totals are computed, not read.
	for k := range resp.Years {
		assert.InDelta(t, 25.0, resp.RF[Total][k], 1e-12)
		assert.InDelta(t, 2.0, resp.DT[Total][k], 1e-12)
	}
}

func Test_LoadScenario_MissingFile(t *testing.T) {
	dir := writeScenarioDir(t, 10,
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		1)
	assert.NoError(t, os.Remove(filepath.Join(dir, rfFileName(PMO))))

	_, _, err := LoadScenario(dir)
	assert.Error(t, err)
}

// A species file on a different year axis must fail the whole load.
func Test_LoadScenario_YearMismatch(t *testing.T) {
	dir := writeScenarioDir(t, 10,
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		1)
	years := testYears(10)
	years[4] = 9999
	writeSeriesFile(t, filepath.Join(dir, dtFileName(O3)), years, constSeries(10, 1))

	_, _, err := LoadScenario(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "year axis")
}

func Test_LoadScenario_ShortEmissions(t *testing.T) {
	dir := writeScenarioDir(t, 10,
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		1)
	writeSeriesFile(t, filepath.Join(dir, co2EmisFile), testYears(5), constSeries(5, 1))

	_, _, err := LoadScenario(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), co2EmisFile)
}

func Test_readSeriesFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	assert.NoError(t, os.WriteFile(path, []byte("h1\nh2\n1940 not-a-number\n"), 0o644))

	_, _, err := readSeriesFile(path)
	assert.Error(t, err)
}

// The two header lines are always skipped, whatever they contain.
func Test_readSeriesFile_HeaderSkip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.txt")
	assert.NoError(t, os.WriteFile(path, []byte("1 2 3\n4 5 6\n1940  1.5\n1941  2.5\n"), 0o644))

	years, values, err := readSeriesFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []int{1940, 1941}, years)
	assert.InDelta(t, 1.5, values[0], 1e-12)
	assert.InDelta(t, 2.5, values[1], 1e-12)
}

func Test_LoadFuelUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), fuelUseFile)
	text := "# fuel use\n# year s1 s2 s3\n2020 1.0 2.0 3.0\n2021 1.1 2.1 3.1\n"
	assert.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	fu, err := LoadFuelUse(path)
	assert.NoError(t, err)
	assert.Equal(t, []int{2020, 2021}, fu.Years)
	assert.Equal(t, 3, len(fu.Series))
	assert.InDelta(t, 2.1, fu.Series[1][1], 1e-12)
}

func Test_LoadFuelUse_RaggedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), fuelUseFile)
	text := "h\nh\n2020 1.0 2.0\n2021 1.1\n"
	assert.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	_, err := LoadFuelUse(path)
	assert.Error(t, err)
}
