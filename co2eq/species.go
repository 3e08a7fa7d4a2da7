package co2eq

// Emission species of the AirClim response set. Index 0 is the fleet
// total, always the sum of indices 1-6.
type Species int

const (
	Total Species = iota
	CO2
	H2O
	O3
	CH4
	Contrails
	PMO

	NumSpecies = 7
)

var speciesNames = [NumSpecies]string{
	"total", "co2", "h2o", "o3", "ch4", "contrails", "pmo",
}

func (s Species) String() string {
	if s < 0 || s >= NumSpecies {
		return "unknown"
	}
	return speciesNames[s]
}

// File-name stems of the per-species response files,
// RF_<stem>_taumean_rfmean.txt and dT_<stem>_taumean_rfmean_lammean.txt.
// The total row is computed, not read, so it has no stem.
var speciesStems = [NumSpecies]string{
	"", "CO2", "H2O", "O3", "CH4", "contrail", "PMO",
}

// Efficacy corrects a species' forcing for its effectiveness at driving
// temperature change relative to CO2 (Ponater et al. 2006 values).
var efficacy = [NumSpecies]float64{
	1.0,  // total (never scaled)
	1.0,  // CO2
	1.14, // H2O
	1.37, // O3
	1.18, // CH4
	0.59, // contrails
	1.0,  // PMO
}

// unitEfficacy leaves all species unscaled (plain GWP/GWP*).
var unitEfficacy = [NumSpecies]float64{1, 1, 1, 1, 1, 1, 1}
