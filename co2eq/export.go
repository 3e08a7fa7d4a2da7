package co2eq

import (
	"bytes"
	"strconv"
)

// ToCSV renders the result as one row per valid year with a column per
// species.
func (r *CO2eqResult) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("year")
	for i := Total; i < NumSpecies; i++ {
		buf.WriteString(",")
		buf.WriteString(i.String())
	}
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for k := range r.Years {
		buf.WriteString(strconv.Itoa(r.Years[k]))
		for i := Total; i < NumSpecies; i++ {
			writeFloat(r.Values[i][k])
		}
		buf.WriteString("\n")
	}
}
