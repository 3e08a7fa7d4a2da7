// co2eq computes CO2-equivalent emission trajectories for aviation
// climate-impact scenarios from precomputed AirClim response series.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"github.com/aviclim/co2eq-go/co2eq"
)

type scenarioOutput struct {
	scenario co2eq.ScenarioConfig
	results  []*co2eq.CO2eqResult
	err      error
}

func main() {
	parser := argparse.NewParser("co2eq", "Computes CO2-equivalent emission trajectories for aviation climate-impact scenarios")

	scenDir := parser.StringPositional(&argparse.Options{
		Default: "",
		Help:    "Scenario directory holding the RF/dT response files and CO2_emis.txt"})

	configPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "YAML run configuration (scenario list, metrics, horizons, palette)"})

	output := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output directory (empty: stdout for a single CSV result, else the working directory)"})

	metric := parser.Selector("m", "metric", []string{"RFI", "GWP", "EGWP", "GTP", "ATR", "GWPstar", "EGWPstar", "all"}, &argparse.Options{
		Default: "all",
		Help:    "Climate metric to compute"})

	horizon := parser.Int("H", "horizon", &argparse.Options{
		Default: 0,
		Help:    "Time horizon in years (0: use configuration, default 100)"})

	agwpPath := parser.String("", "agwp", &argparse.Options{
		Default: "",
		Help:    "AGWP-of-CO2 lookup table, required for GWPstar/EGWPstar"})

	fuelPath := parser.String("", "fuel", &argparse.Options{
		Default: "",
		Help:    "Background fuel-use file (E_bg_new_scen.txt) for the auxiliary chart"})

	format := parser.Selector("f", "file", []string{"CSV", "PNG", "SVG", "PDF"}, &argparse.Options{
		Default: "CSV",
		Help:    "Output format: CSV table or rendered chart"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("co2eq")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// Run configuration, with CLI flags taking precedence.
	var cfg *co2eq.RunConfig
	if *configPath != "" {
		cfg, err = co2eq.LoadConfig(*configPath)
		if err != nil {
			fail(err)
		}
	} else {
		cfg = co2eq.DefaultConfig()
	}
	if *scenDir != "" {
		cfg.Scenarios = []co2eq.ScenarioConfig{{Name: filepath.Base(*scenDir), Dir: *scenDir}}
	}
	if *metric != "all" {
		cfg.Metrics = []string{*metric}
	}
	if *horizon != 0 {
		cfg.Horizons = []int{*horizon}
	}
	if *agwpPath != "" {
		cfg.AGWPPath = *agwpPath
	}
	if *fuelPath != "" {
		cfg.FuelPath = *fuelPath
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *configPath == "" || *format != "CSV" {
		cfg.Format = *format
	}

	if len(cfg.Scenarios) == 0 {
		fail(fmt.Errorf("no scenario given: pass a scenario directory or a --config with a scenario list"))
	}
	kinds, err := cfg.MetricKinds()
	if err != nil {
		fail(err)
	}

	// The AGWP table is only a hard requirement of the flow-based
	// metrics.
	var agwp *co2eq.AGWPTable
	if cfg.AGWPPath != "" {
		agwp, err = co2eq.LoadAGWPTable(cfg.AGWPPath)
		if err != nil {
			fail(err)
		}
	}
	for _, k := range kinds {
		if (k == co2eq.GWPStar || k == co2eq.EGWPStar) && agwp == nil {
			fail(fmt.Errorf("%s requires an AGWP lookup table (--agwp)", k))
		}
	}

	// Scenarios are independent, so they are computed concurrently.
	// Within each series the chronological order is preserved.
	c := make(chan scenarioOutput, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		go func(sc co2eq.ScenarioConfig) {
			c <- computeScenario(sc, kinds, cfg.Horizons, agwp)
		}(sc)
	}
	byDir := make(map[string]scenarioOutput, len(cfg.Scenarios))
	for range cfg.Scenarios {
		out := <-c
		if out.err != nil {
			fail(out.err)
		}
		byDir[out.scenario.Dir] = out
	}

	// Single CSV result with no output directory goes to stdout.
	toStdout := cfg.Format == "CSV" && *output == "" && *configPath == "" &&
		len(cfg.Scenarios) == 1 && len(kinds) == 1 && len(cfg.Horizons) == 1

	if !toStdout {
		if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
			fail(err)
		}
	}

	ext := strings.ToLower(cfg.Format)
	for _, sc := range cfg.Scenarios {
		for _, r := range byDir[sc.Dir].results {
			if cfg.Format == "CSV" {
				var buf bytes.Buffer
				r.ToCSV(&buf)
				if toStdout {
					fmt.Print(buf.String())
					continue
				}
				path := outputPath(cfg.OutputDir, sc.Name, r, ext)
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					fail(err)
				}
				logger.Infof("table written: %s", path)
			} else {
				p, err := co2eq.PlotResult(r, sc.Name, cfg.Palette)
				if err != nil {
					fail(err)
				}
				if err := co2eq.SavePlot(p, outputPath(cfg.OutputDir, sc.Name, r, ext)); err != nil {
					fail(err)
				}
			}
		}
	}

	// Auxiliary background fuel-use chart.
	if cfg.FuelPath != "" && cfg.Format != "CSV" {
		fu, err := co2eq.LoadFuelUse(cfg.FuelPath)
		if err != nil {
			fail(err)
		}
		names := make([]string, len(cfg.Scenarios))
		for i, sc := range cfg.Scenarios {
			names[i] = sc.Name
		}
		p, err := co2eq.PlotFuelUse(fu, names)
		if err != nil {
			fail(err)
		}
		if err := co2eq.SavePlot(p, filepath.Join(cfg.OutputDir, "fuel_use."+ext)); err != nil {
			fail(err)
		}
	}

	logger.Infof("run finished")
}

func computeScenario(sc co2eq.ScenarioConfig, kinds []co2eq.MetricKind, horizons []int, agwp *co2eq.AGWPTable) scenarioOutput {
	resp, emis, err := co2eq.LoadScenario(sc.Dir)
	if err != nil {
		return scenarioOutput{scenario: sc, err: err}
	}
	var results []*co2eq.CO2eqResult
	for _, k := range kinds {
		for _, h := range horizons {
			r, err := co2eq.Compute(k, h, resp, emis, agwp)
			if err != nil {
				return scenarioOutput{scenario: sc, err: fmt.Errorf("%s: %w", sc.Name, err)}
			}
			results = append(results, r)
		}
	}
	return scenarioOutput{scenario: sc, results: results}
}

func outputPath(dir, scenario string, r *co2eq.CO2eqResult, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s_H%03d.%s", scenario, r.Metric, r.Horizon, ext))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
