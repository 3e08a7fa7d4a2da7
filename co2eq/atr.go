package co2eq

import "gonum.org/v1/gonum/floats"

// atrCO2eq computes the Average Temperature Response metric: the
// forward h-year mean of the species temperature response, normalized
// by CO2's, times the CO2 emission of year t. Valid for t in [0, T-h).
func atrCO2eq(h int, resp *ResponseSeries, emis *EmissionSeries) (*CO2eqResult, error) {
	t := len(resp.Years)
	hi := t - h
	if err := checkEmissions(ATR, emis, hi); err != nil {
		return nil, err
	}

	r := &CO2eqResult{Metric: ATR, Horizon: h, Years: resp.Years[:hi]}
	z := co2Ratio{kind: ATR}
	hf := float64(h)
	for i := CO2; i < NumSpecies; i++ {
		row := make([]float64, hi)
		for k := 0; k < hi; k++ {
			atrSpecies := floats.Sum(resp.DT[i][k : k+h]) / hf
			atrCO2 := floats.Sum(resp.DT[CO2][k : k+h]) / hf
			row[k] = z.ratio(atrSpecies, atrCO2) * emis.CO2[k]
		}
		r.Values[i] = row
	}
	z.warn()
	r.RecomputeTotal()
	return r, nil
}
