package co2eq

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Number of header lines at the top of every AirClim output table.
const headerLines = 2

// Fixed file names inside a scenario directory.
const (
	co2EmisFile = "CO2_emis.txt"
	fuelUseFile = "E_bg_new_scen.txt"
)

func rfFileName(s Species) string {
	return fmt.Sprintf("RF_%s_taumean_rfmean.txt", speciesStems[s])
}

func dtFileName(s Species) string {
	return fmt.Sprintf("dT_%s_taumean_rfmean_lammean.txt", speciesStems[s])
}

// One loaded per-species file, fanned in over a channel.
type loadedSeries struct {
	species Species
	isRF    bool
	years   []int
	values  []float64
	err     error
}

// LoadScenario reads the twelve per-species response files and the CO2
// emission series of one fleet scenario directory. The species files
// are read concurrently. All files must share one year axis; a
// mismatch is reported before any computation can run on the data.
func LoadScenario(dir string) (*ResponseSeries, *EmissionSeries, error) {
	c := make(chan loadedSeries, 2*(NumSpecies-1))
	for i := CO2; i < NumSpecies; i++ {
		go loadSpeciesFile(filepath.Join(dir, rfFileName(i)), i, true, c)
		go loadSpeciesFile(filepath.Join(dir, dtFileName(i)), i, false, c)
	}

	var years []int
	var rf, dt [NumSpecies][]float64
	for n := 0; n < 2*(NumSpecies-1); n++ {
		ret := <-c
		if ret.err != nil {
			return nil, nil, ret.err
		}
		if years == nil {
			years = ret.years
		} else if err := sameYearAxis(years, ret.years); err != nil {
			name := rfFileName(ret.species)
			if !ret.isRF {
				name = dtFileName(ret.species)
			}
			return nil, nil, fmt.Errorf("co2eq: %s: %w", name, err)
		}
		if ret.isRF {
			rf[ret.species] = ret.values
		} else {
			dt[ret.species] = ret.values
		}
		logger.Debugf("loaded %s series for %s (%d years)", quantityName(ret.isRF), ret.species, len(ret.values))
	}

	resp, err := NewResponseSeries(years, rf, dt)
	if err != nil {
		return nil, nil, err
	}

	emisYears, emisVals, err := readSeriesFile(filepath.Join(dir, co2EmisFile))
	if err != nil {
		return nil, nil, err
	}
	if len(emisYears) > 0 && len(years) > 0 && emisYears[0] != years[0] {
		return nil, nil, fmt.Errorf("co2eq: %s starts at year %d, response series start at %d", co2EmisFile, emisYears[0], years[0])
	}
	if len(emisVals) < len(years) {
		return nil, nil, fmt.Errorf("co2eq: %s has %d years, need at least %d to cover the response series", co2EmisFile, len(emisVals), len(years))
	}

	logger.Infof("scenario %s loaded: %d response years, %d emission years", dir, len(years), len(emisVals))
	return resp, &EmissionSeries{Years: emisYears, CO2: emisVals}, nil
}

func quantityName(isRF bool) string {
	if isRF {
		return "RF"
	}
	return "dT"
}

func loadSpeciesFile(path string, s Species, isRF bool, c chan loadedSeries) {
	years, values, err := readSeriesFile(path)
	c <- loadedSeries{species: s, isRF: isRF, years: years, values: values, err: err}
}

func sameYearAxis(a, b []int) error {
	if len(a) != len(b) {
		return fmt.Errorf("year axis has %d entries, expected %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("year axis diverges at row %d (%d vs %d)", i, b[i], a[i])
		}
	}
	return nil
}

// readSeriesFile parses one whitespace-delimited table: two header
// lines, then one row per year with the year in column 0 and the value
// in column 1.
func readSeriesFile(path string) ([]int, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("co2eq: %w", err)
	}
	defer f.Close()

	var years []int
	var values []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("co2eq: %s:%d: expected at least 2 columns, got %d", path, line, len(fields))
		}
		year, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("co2eq: %s:%d: bad year %q: %w", path, line, fields[0], err)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("co2eq: %s:%d: bad value %q: %w", path, line, fields[1], err)
		}
		years = append(years, int(year))
		values = append(values, value)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("co2eq: %s: %w", path, err)
	}
	if len(years) == 0 {
		return nil, nil, fmt.Errorf("co2eq: %s: no data rows", path)
	}
	return years, values, nil
}

// LoadFuelUse parses the multi-scenario background fuel file: two
// header lines, the year in column 0 and one fuel-use series per
// remaining column.
func LoadFuelUse(path string) (*FuelUse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("co2eq: %w", err)
	}
	defer f.Close()

	fu := &FuelUse{}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("co2eq: %s:%d: expected at least 2 columns, got %d", path, line, len(fields))
		}
		if fu.Series == nil {
			fu.Series = make([][]float64, len(fields)-1)
		} else if len(fields)-1 != len(fu.Series) {
			return nil, fmt.Errorf("co2eq: %s:%d: expected %d columns, got %d", path, line, len(fu.Series)+1, len(fields))
		}
		year, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("co2eq: %s:%d: bad year %q: %w", path, line, fields[0], err)
		}
		fu.Years = append(fu.Years, int(year))
		for j := 1; j < len(fields); j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("co2eq: %s:%d: bad value %q: %w", path, line, fields[j], err)
			}
			fu.Series[j-1] = append(fu.Series[j-1], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("co2eq: %s: %w", path, err)
	}
	if len(fu.Years) == 0 {
		return nil, fmt.Errorf("co2eq: %s: no data rows", path)
	}
	return fu, nil
}
