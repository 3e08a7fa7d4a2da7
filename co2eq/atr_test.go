package co2eq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The CO2 row normalized by itself is identically 1, so with any
// shared emission series the CO2 row reproduces the emissions.
func Test_ATR_CO2MultiplierIsOne(t *testing.T) {
	n := 40
	var rf, dt [NumSpecies][]float64
	for i := CO2; i < NumSpecies; i++ {
		rf[i] = constSeries(n, 1)
		ramp := make([]float64, n)
		for k := range ramp {
			ramp[k] = 0.01 * float64(k+1) * float64(i)
		}
		dt[i] = ramp
	}
	resp, err := NewResponseSeries(testYears(n), rf, dt)
	assert.NoError(t, err)
	emis := constEmissions(n, 77)

	r, err := Compute(ATR, 15, resp, emis, nil)
	assert.NoError(t, err)
	assert.Equal(t, 25, r.Len())
	for k := 0; k < r.Len(); k++ {
		assert.InDelta(t, 77.0, r.Values[CO2][k], 1e-9)
	}
}

// ATR is the forward H-year mean, so constant responses give the
// plain ratio of the constants.
func Test_ATR_ConstantResponses(t *testing.T) {
	resp := constResponse(t, 50,
		[NumSpecies]float64{0, 1, 1, 1, 1, 1, 1},
		[NumSpecies]float64{0, 4, 1, 2, 3, 4, 6})
	emis := constEmissions(50, 10)

	r, err := Compute(ATR, 20, resp, emis, nil)
	assert.NoError(t, err)
	for k := 0; k < r.Len(); k++ {
		assert.InDelta(t, 2.5, r.Values[H2O][k], 1e-9)   // 1/4 * 10
		assert.InDelta(t, 5.0, r.Values[O3][k], 1e-9)    // 2/4 * 10
		assert.InDelta(t, 15.0, r.Values[PMO][k], 1e-9)  // 6/4 * 10
		assert.InDelta(t, 50.0, r.Values[Total][k], 1e-9)
	}
}
