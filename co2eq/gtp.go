package co2eq

// gtpCO2eq computes the Global Temperature change Potential metric:
// the species temperature response h years after year t divided by
// CO2's, times the CO2 emission of year t. Valid for t in [0, T-h).
func gtpCO2eq(h int, resp *ResponseSeries, emis *EmissionSeries) (*CO2eqResult, error) {
	t := len(resp.Years)
	hi := t - h
	if err := checkEmissions(GTP, emis, hi); err != nil {
		return nil, err
	}

	r := &CO2eqResult{Metric: GTP, Horizon: h, Years: resp.Years[:hi]}
	z := co2Ratio{kind: GTP}
	for i := CO2; i < NumSpecies; i++ {
		row := make([]float64, hi)
		for k := 0; k < hi; k++ {
			row[k] = z.ratio(resp.DT[i][k+h], resp.DT[CO2][k+h]) * emis.CO2[k]
		}
		r.Values[i] = row
	}
	z.warn()
	r.RecomputeTotal()
	return r, nil
}
