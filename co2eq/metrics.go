package co2eq

import (
	"fmt"
	"strings"

	"github.com/hhkbp2/go-logging"
)

var logger = logging.GetLogger("co2eq")

// Climate metric used to convert non-CO2 responses into CO2-equivalent
// emissions.
type MetricKind int

const (
	RFI MetricKind = iota
	GWP
	EGWP
	GTP
	ATR
	GWPStar
	EGWPStar
)

var metricNames = []string{"RFI", "GWP", "EGWP", "GTP", "ATR", "GWPstar", "EGWPstar"}

func (k MetricKind) String() string {
	if k < 0 || int(k) >= len(metricNames) {
		return "unknown"
	}
	return metricNames[k]
}

// AllMetrics returns the seven metric kinds in presentation order.
func AllMetrics() []MetricKind {
	return []MetricKind{RFI, GWP, EGWP, GTP, ATR, GWPStar, EGWPStar}
}

// ParseMetricKind resolves a metric name, case-insensitively.
func ParseMetricKind(name string) (MetricKind, error) {
	for i, n := range metricNames {
		if strings.EqualFold(n, name) {
			return MetricKind(i), nil
		}
	}
	return 0, fmt.Errorf("co2eq: unknown metric %q", name)
}

// Compute derives the CO2-equivalent emission series of one scenario
// under the given metric at time horizon h. The AGWP table is only
// needed by GWPstar/EGWPstar and may be nil otherwise.
func Compute(kind MetricKind, h int, resp *ResponseSeries, emis *EmissionSeries, agwp *AGWPTable) (*CO2eqResult, error) {
	if h < 1 {
		return nil, fmt.Errorf("co2eq: time horizon must be positive, got %d", h)
	}
	if t := len(resp.Years); h >= t {
		return nil, fmt.Errorf("co2eq: time horizon %d must be below the %d available response years", h, t)
	}

	switch kind {
	case RFI:
		return rfCO2eq(h, resp, emis)
	case GWP:
		return gwpCO2eq(GWP, h, resp, emis, unitEfficacy)
	case EGWP:
		return gwpCO2eq(EGWP, h, resp, emis, efficacy)
	case GTP:
		return gtpCO2eq(h, resp, emis)
	case ATR:
		return atrCO2eq(h, resp, emis)
	case GWPStar:
		return gwpstarCO2eq(GWPStar, h, resp, emis, agwp, unitEfficacy)
	case EGWPStar:
		return gwpstarCO2eq(EGWPStar, h, resp, emis, agwp, efficacy)
	}
	return nil, fmt.Errorf("co2eq: unknown metric kind %d", kind)
}

// checkEmissions verifies the emission series covers every year a
// converter reads, so a short input fails explicitly instead of
// indexing out of bounds.
func checkEmissions(kind MetricKind, emis *EmissionSeries, need int) error {
	if len(emis.CO2) < need {
		return fmt.Errorf("co2eq: %s needs %d emission years, CO2 series has %d", kind, need, len(emis.CO2))
	}
	return nil
}

// co2Ratio divides a species response by the CO2 response, counting
// zero denominators. The division itself is left to IEEE semantics
// (Inf/NaN) since the published analysis starts after the initial
// transient where CO2 forcing is still zero.
type co2Ratio struct {
	kind  MetricKind
	zeros int
}

func (z *co2Ratio) ratio(num, den float64) float64 {
	if den == 0 {
		z.zeros++
	}
	return num / den
}

func (z *co2Ratio) warn() {
	if z.zeros > 0 {
		logger.Warnf("%s: CO2 response is zero at %d time steps, emitting Inf/NaN there", z.kind, z.zeros)
	}
}
