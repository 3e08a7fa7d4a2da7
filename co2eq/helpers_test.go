package co2eq

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Builds a synthetic year axis starting at 1940.
func testYears(n int) []int {
	years := make([]int, n)
	for i := range years {
		years[i] = 1940 + i
	}
	return years
}

func constSeries(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Builds a response set where every species holds a constant value.
func constResponse(t *testing.T, n int, rfVals, dtVals [NumSpecies]float64) *ResponseSeries {
	t.Helper()
	var rf, dt [NumSpecies][]float64
	for i := CO2; i < NumSpecies; i++ {
		rf[i] = constSeries(n, rfVals[i])
		dt[i] = constSeries(n, dtVals[i])
	}
	resp, err := NewResponseSeries(testYears(n), rf, dt)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func constEmissions(n int, v float64) *EmissionSeries {
	return &EmissionSeries{Years: testYears(n), CO2: constSeries(n, v)}
}

// Writes one response table in the AirClim flat-file format.
func writeSeriesFile(t *testing.T, path string, years []int, values []float64) {
	t.Helper()
	text := "# synthetic response series\n# year value\n"
	for i := range years {
		text += fmt.Sprintf("%d  %g\n", years[i], values[i])
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Writes a complete synthetic scenario directory with constant series.
func writeScenarioDir(t *testing.T, n int, rfVals, dtVals [NumSpecies]float64, emis float64) string {
	t.Helper()
	dir := t.TempDir()
	years := testYears(n)
	for i := CO2; i < NumSpecies; i++ {
		writeSeriesFile(t, filepath.Join(dir, rfFileName(i)), years, constSeries(n, rfVals[i]))
		writeSeriesFile(t, filepath.Join(dir, dtFileName(i)), years, constSeries(n, dtVals[i]))
	}
	writeSeriesFile(t, filepath.Join(dir, co2EmisFile), years, constSeries(n, emis))
	return dir
}
