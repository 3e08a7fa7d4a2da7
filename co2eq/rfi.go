package co2eq

// The response model leaves its last output year inconsistent between
// species, so the RFI range drops one extra index at the tail. Kept
// for index alignment with the published figures.
const rfiTailExclusion = 1

// rfCO2eq computes the radiative-forcing-ratio metric: the species
// forcing at year t divided by the CO2 forcing at year t, times the
// CO2 emission of that year. Valid for t in [h, T-1), length T-h-1.
func rfCO2eq(h int, resp *ResponseSeries, emis *EmissionSeries) (*CO2eqResult, error) {
	t := len(resp.Years)
	lo, hi := h, t-rfiTailExclusion
	if err := checkEmissions(RFI, emis, hi); err != nil {
		return nil, err
	}

	r := &CO2eqResult{Metric: RFI, Horizon: h, Years: resp.Years[lo:hi]}
	z := co2Ratio{kind: RFI}
	for i := CO2; i < NumSpecies; i++ {
		row := make([]float64, hi-lo)
		for k := lo; k < hi; k++ {
			row[k-lo] = z.ratio(resp.RF[i][k], resp.RF[CO2][k]) * emis.CO2[k]
		}
		r.Values[i] = row
	}
	z.warn()
	r.RecomputeTotal()
	return r, nil
}
