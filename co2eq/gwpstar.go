package co2eq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// GWP* constants from the Smith et al. (2021) flow-based extension.
const (
	gwpstarWindow = 20   // backward differencing window, years
	gwpstarS      = 0.25 // weight of the forcing-level term
	mwPerW        = 1000.0
)

// gwpstarG is the fixed scalar g = (1 - e^{-s/(1-s)}) / s.
var gwpstarG = (1 - math.Exp(-gwpstarS/(1-gwpstarS))) / gwpstarS

// gwpstarCO2eq computes the flow-based GWP* metric (and its
// efficacy-weighted variant). For each species the forcing rate over
// the trailing 20-year window and the mean forcing level over the same
// window are combined and normalized by CO2's absolute GWP at horizon
// h. The CO2 row is then overwritten with the raw CO2 emissions (CO2's
// own GWP* contribution is its direct emission) and the total is
// recomputed after the override. Valid for t in [20, T).
func gwpstarCO2eq(kind MetricKind, h int, resp *ResponseSeries, emis *EmissionSeries, agwp *AGWPTable, eff [NumSpecies]float64) (*CO2eqResult, error) {
	if agwp == nil {
		return nil, fmt.Errorf("co2eq: %s requires an AGWP lookup table", kind)
	}
	agwpCO2, err := agwp.CO2(h)
	if err != nil {
		return nil, err
	}

	t := len(resp.Years)
	lo, hi := gwpstarWindow, t
	if lo >= hi {
		return nil, fmt.Errorf("co2eq: %s needs more than %d response years, got %d", kind, gwpstarWindow, t)
	}
	if err := checkEmissions(kind, emis, hi); err != nil {
		return nil, err
	}

	const (
		dt = float64(gwpstarWindow)
		s  = gwpstarS
	)
	hf := float64(h)

	r := &CO2eqResult{Metric: kind, Horizon: h, Years: resp.Years[lo:hi]}
	for i := CO2; i < NumSpecies; i++ {
		row := make([]float64, hi-lo)
		for k := lo; k < hi; k++ {
			// Forcing rate and mean forcing level over the trailing
			// window, converted from mW/m2 to W/m2.
			dfdt := (resp.RF[i][k] - resp.RF[i][k-gwpstarWindow]) / dt / mwPerW
			favg := floats.Sum(resp.RF[i][k-gwpstarWindow+1 : k+1]) / dt / mwPerW
			row[k-lo] = eff[i] * gwpstarG * ((1-s)*dfdt*hf/agwpCO2 + s*favg/agwpCO2)
		}
		r.Values[i] = row
	}

	// CO2 enters GWP* as its direct emission, not a flow quantity.
	co2Row := make([]float64, hi-lo)
	copy(co2Row, emis.CO2[lo:hi])
	r.Values[CO2] = co2Row

	r.RecomputeTotal()
	return r, nil
}
