package co2eq

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// One fleet scenario: a display name and the directory holding its
// response and emission files.
type ScenarioConfig struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// RunConfig drives a batch run: which scenarios to load, which metrics
// and horizons to compute, where the auxiliary inputs live and how to
// render the outputs. CLI flags override individual fields.
type RunConfig struct {
	Scenarios []ScenarioConfig  `yaml:"scenarios"`
	Metrics   []string          `yaml:"metrics"`
	Horizons  []int             `yaml:"horizons"`
	AGWPPath  string            `yaml:"agwp_path"`
	FuelPath  string            `yaml:"fuel_path"`
	OutputDir string            `yaml:"output_dir"`
	Format    string            `yaml:"format"`
	Palette   map[string]string `yaml:"palette"`
}

// DefaultConfig computes all seven metrics at H=100 and writes CSV to
// the working directory.
func DefaultConfig() *RunConfig {
	names := make([]string, 0, len(metricNames))
	names = append(names, metricNames...)
	return &RunConfig{
		Metrics:   names,
		Horizons:  []int{100},
		OutputDir: ".",
		Format:    "CSV",
	}
}

// LoadConfig reads a YAML run configuration, filling unset fields with
// the defaults.
func LoadConfig(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("co2eq: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("co2eq: %s: %w", path, err)
	}
	if len(cfg.Horizons) == 0 {
		cfg.Horizons = []int{100}
	}
	if cfg.Format == "" {
		cfg.Format = "CSV"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	for _, name := range cfg.Metrics {
		if _, err := ParseMetricKind(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// MetricKinds resolves the configured metric names.
func (cfg *RunConfig) MetricKinds() ([]MetricKind, error) {
	kinds := make([]MetricKind, 0, len(cfg.Metrics))
	for _, name := range cfg.Metrics {
		k, err := ParseMetricKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
