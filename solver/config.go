package solver

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/policy"
)

// Kind is the value the top-level "kind" key of a config file must carry.
const Kind = "crucible"

var (
	// ErrBadKind indicates a config file meant for something else.
	ErrBadKind = errors.New("solver: config kind must be " + Kind)
	// ErrBadConfig indicates a config that cannot drive a search.
	ErrBadConfig = errors.New("solver: invalid config")
)

// Mode names one search and the run limits of its policy.
// Min == 0 selects the bounded-run policy, anything else forced-minimum-run.
type Mode struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

// Policy builds the transition policy of m.
func (m Mode) Policy() (policy.Policy, error) {
	return policy.New(m.Min, m.Max)
}

// Config lists the modes to run over one grid.
// Keys are snake_case because viper lower-cases everything it reads.
type Config struct {
	Modes []Mode `yaml:"modes"`
	// MaxIterations caps finalized states per mode; 0 means unlimited.
	MaxIterations int `yaml:"max_iterations"`
}

// outerConfig is the envelope every config file shares: a kind selector and
// the kind-specific definition, which is decoded separately.
type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// DefaultConfig runs the two reference modes: bounded (max 3) and
// ultra (min 4, max 10).
func DefaultConfig() Config {
	return Config{
		Modes: []Mode{
			{Name: "bounded", Min: 0, Max: policy.DefaultMaxRun},
			{Name: "ultra", Min: policy.UltraMinRun, Max: policy.UltraMaxRun},
		},
	}
}

// Validate checks that every mode has a unique name and valid run limits.
func (cfg Config) Validate() error {
	if len(cfg.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrBadConfig)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations is %d", ErrBadConfig, cfg.MaxIterations)
	}
	seen := make(map[string]bool, len(cfg.Modes))
	for i, m := range cfg.Modes {
		if m.Name == "" {
			return fmt.Errorf("%w: mode %d has no name", ErrBadConfig, i)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate mode %q", ErrBadConfig, m.Name)
		}
		seen[m.Name] = true
		if _, err := m.Policy(); err != nil {
			return fmt.Errorf("%w: mode %q: %w", ErrBadConfig, m.Name, err)
		}
	}

	return nil
}

// FromYaml reads a config file of the form
//
//	kind: crucible
//	def:
//	  max_iterations: 0
//	  modes:
//	    - {name: bounded, min: 0, max: 3}
//
// Modes left out fall back to DefaultConfig.
func FromYaml(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("solver: read %s: %w", path, err)
	}

	return decode(vp)
}

// Decode is FromYaml for an already opened stream.
func Decode(r io.Reader) (*Config, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	if err := vp.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("solver: read config: %w", err)
	}

	return decode(vp)
}

func decode(vp *viper.Viper) (*Config, error) {
	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}
	if outer.Kind != Kind {
		return nil, fmt.Errorf("%w, got %q", ErrBadKind, outer.Kind)
	}

	// Round-trip the definition through yaml so the yaml tags apply.
	def, err := yaml.Marshal(outer.Def)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err = yaml.Unmarshal(def, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if len(cfg.Modes) == 0 {
		cfg.Modes = DefaultConfig().Modes
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
