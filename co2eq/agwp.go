package co2eq

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Domain of the AGWP lookup table: one value per integer horizon.
const (
	agwpMinHorizon = 1
	agwpMaxHorizon = 100
)

// Unit conversion applied to the raw table values at lookup time, so
// the AGWP denominator matches the W/m2 forcing units of GWP*.
const agwpUnitScale = 1e9

// Absolute Global Warming Potential of CO2 per time horizon H=1..100,
// read from a flat file of 100 values.
type AGWPTable struct {
	values []float64
}

// LoadAGWPTable reads the lookup file. Lines starting with '#' are
// ignored; everything else is whitespace-separated floats. Exactly 100
// values are required.
func LoadAGWPTable(path string) (*AGWPTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("co2eq: %w", err)
	}
	defer f.Close()

	var values []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("co2eq: %s:%d: bad AGWP value %q: %w", path, line, field, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("co2eq: %s: %w", path, err)
	}
	if len(values) != agwpMaxHorizon {
		return nil, fmt.Errorf("co2eq: %s: AGWP table has %d values, expected %d", path, len(values), agwpMaxHorizon)
	}
	return &AGWPTable{values: values}, nil
}

// CO2 returns the absolute GWP of CO2 at horizon h in the unit system
// of the GWP* formula. Horizons outside the table domain fail
// explicitly rather than extrapolate.
func (t *AGWPTable) CO2(h int) (float64, error) {
	if h < agwpMinHorizon || h > agwpMaxHorizon {
		return 0, fmt.Errorf("co2eq: time horizon %d outside AGWP table domain [%d,%d]", h, agwpMinHorizon, agwpMaxHorizon)
	}
	return t.values[h-1] * agwpUnitScale, nil
}
