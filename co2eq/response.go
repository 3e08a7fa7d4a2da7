package co2eq

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Per-scenario AirClim model output: radiative forcing RF (mW/m2) and
// temperature change DT (K) per species, aligned to one year axis.
// Immutable once loaded.
type ResponseSeries struct {
	Years []int
	RF    [NumSpecies][]float64
	DT    [NumSpecies][]float64
}

// Yearly CO2 mass emissions of one scenario, aligned to the same year
// axis as the responses (must cover at least as many years).
type EmissionSeries struct {
	Years []int
	CO2   []float64
}

// Multi-scenario background fuel-use series (auxiliary plotting input).
type FuelUse struct {
	Years  []int
	Series [][]float64
}

// CO2-equivalent emission series computed by one metric at one time
// horizon. Years is the subsequence of the response year axis the
// values are valid for.
type CO2eqResult struct {
	Metric  MetricKind
	Horizon int
	Years   []int
	Values  [NumSpecies][]float64
}

// NewResponseSeries assembles a response set and computes the total
// rows as the column-wise sum of the species rows.
func NewResponseSeries(years []int, rf, dt [NumSpecies][]float64) (*ResponseSeries, error) {
	for i := CO2; i < NumSpecies; i++ {
		if len(rf[i]) != len(years) {
			return nil, fmt.Errorf("co2eq: RF series for %s has %d rows, year axis has %d", Species(i), len(rf[i]), len(years))
		}
		if len(dt[i]) != len(years) {
			return nil, fmt.Errorf("co2eq: dT series for %s has %d rows, year axis has %d", Species(i), len(dt[i]), len(years))
		}
	}
	resp := &ResponseSeries{Years: years, RF: rf, DT: dt}
	resp.RF[Total] = sumSpeciesRows(resp.RF, len(years))
	resp.DT[Total] = sumSpeciesRows(resp.DT, len(years))
	return resp, nil
}

func sumSpeciesRows(rows [NumSpecies][]float64, n int) []float64 {
	total := make([]float64, n)
	for i := CO2; i < NumSpecies; i++ {
		floats.Add(total, rows[i])
	}
	return total
}

// RecomputeTotal overwrites the total row with the sum of the species
// rows. Called after every converter, and again after GWP*/EGWP*
// overwrite the CO2 row.
func (r *CO2eqResult) RecomputeTotal() {
	r.Values[Total] = sumSpeciesRows(r.Values, len(r.Years))
}

// Len returns the number of valid years in the result.
func (r *CO2eqResult) Len() int {
	return len(r.Years)
}
