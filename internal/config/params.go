package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunParams are the numeric search parameters, loadable from a YAML file so
// parameter sweeps don't need a wall of flags. Flag values override file
// values in the CLI.
type RunParams struct {
	Self        string  `yaml:"self"`
	N           int     `yaml:"n"`
	Depth       int     `yaml:"depth"`
	Beam        int     `yaml:"beam"`
	Gamma       float64 `yaml:"gamma"`
	FailureCost float64 `yaml:"failure_cost"`
	K           float64 `yaml:"k"`
	X0          float64 `yaml:"x0"`
}

// DefaultParams returns the standard run parameters.
func DefaultParams() RunParams {
	return RunParams{
		N:           5,
		Depth:       6,
		Beam:        50,
		Gamma:       0.9,
		FailureCost: -10.0,
		K:           1.0,
		X0:          0.0,
	}
}

// LoadParams reads run parameters from a YAML file, filling unset fields
// from the defaults.
func LoadParams(path string) (RunParams, error) {
	p := DefaultParams()
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("open params file: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("params file %s: %w", path, err)
	}
	return p, nil
}
