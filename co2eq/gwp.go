package co2eq

import "gonum.org/v1/gonum/floats"

// gwpCO2eq computes the (efficacy-weighted) Global Warming Potential
// metric. The absolute GWP of species i at year t is its forward
// h-year forcing sum, scaled by the species efficacy; the multiplier
// normalizes by CO2's own absolute GWP. Valid for t in [0, T-h).
func gwpCO2eq(kind MetricKind, h int, resp *ResponseSeries, emis *EmissionSeries, eff [NumSpecies]float64) (*CO2eqResult, error) {
	t := len(resp.Years)
	hi := t - h
	if err := checkEmissions(kind, emis, hi); err != nil {
		return nil, err
	}

	r := &CO2eqResult{Metric: kind, Horizon: h, Years: resp.Years[:hi]}
	z := co2Ratio{kind: kind}
	for i := CO2; i < NumSpecies; i++ {
		row := make([]float64, hi)
		for k := 0; k < hi; k++ {
			agwpSpecies := eff[i] * floats.Sum(resp.RF[i][k : k+h])
			agwpCO2 := floats.Sum(resp.RF[CO2][k : k+h])
			row[k] = z.ratio(agwpSpecies, agwpCO2) * emis.CO2[k]
		}
		r.Values[i] = row
	}
	z.warn()
	r.RecomputeTotal()
	return r, nil
}
