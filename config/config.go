// Package config holds the surveyor configuration, loaded through viper
// from defaults, an optional surveyor.yaml and SURVEYOR_ environment
// variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/viper"
)

// Mission modes.
const (
	ModeUnlimited = "unlimited"
	ModeBudget    = "budget"
	ModeBoth      = "both"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the whole application configuration.
type Config struct {
	Logger  LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Mission MissionConfig  `mapstructure:"mission" yaml:"mission"`
	Render  RenderConfig   `mapstructure:"render" yaml:"render"`
	Output  OutputConfig   `mapstructure:"output" yaml:"output"`
	Run     RunConfig      `mapstructure:"run" yaml:"run"`
	Planets []PlanetSource `mapstructure:"planets" yaml:"planets"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig names the console colour of each log level.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// MissionConfig selects the schedulers and the simulated rover's economy.
type MissionConfig struct {
	Mode        string  `mapstructure:"mode" yaml:"mode"`
	MaxBattery  float64 `mapstructure:"max_battery" yaml:"max_battery"`
	MoveCost    float64 `mapstructure:"move_cost" yaml:"move_cost"`
	BlockedCost float64 `mapstructure:"blocked_cost" yaml:"blocked_cost"`
}

// RunsUnlimited reports whether the unconstrained scheduler is selected.
func (m MissionConfig) RunsUnlimited() bool { return m.Mode == ModeUnlimited || m.Mode == ModeBoth }

// RunsBudget reports whether the budget-constrained scheduler is selected.
func (m MissionConfig) RunsBudget() bool { return m.Mode == ModeBudget || m.Mode == ModeBoth }

// RenderConfig controls the terminal animation.
type RenderConfig struct {
	Enabled       bool          `mapstructure:"enabled" yaml:"enabled"`
	Delay         time.Duration `mapstructure:"delay" yaml:"delay"`
	RechargeSteps int           `mapstructure:"recharge_steps" yaml:"recharge_steps"`
}

// OutputConfig names where map files are written.
type OutputConfig struct {
	Dir             string `mapstructure:"dir" yaml:"dir"`
	SuffixUnlimited string `mapstructure:"suffix_unlimited" yaml:"suffix_unlimited"`
	SuffixBudget    string `mapstructure:"suffix_budget" yaml:"suffix_budget"`
}

// RunConfig tunes the driver.
type RunConfig struct {
	Parallel bool `mapstructure:"parallel" yaml:"parallel"`
}

// PlanetSource is a named terrain file.
type PlanetSource struct {
	Name string `mapstructure:"name" yaml:"name"`
	File string `mapstructure:"file" yaml:"file"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "surveyor")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Mission --
	v.SetDefault("mission.mode", ModeBoth)
	v.SetDefault("mission.max_battery", 20.0)
	v.SetDefault("mission.move_cost", 1.0)
	v.SetDefault("mission.blocked_cost", 0.0)

	// -- Render --
	v.SetDefault("render.enabled", false)
	v.SetDefault("render.delay", "200ms")
	v.SetDefault("render.recharge_steps", 10)

	// -- Output --
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.suffix_unlimited", "_unlimited.txt")
	v.SetDefault("output.suffix_budget", "_battery.txt")

	v.SetDefault("run.parallel", true)
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	switch c.Mission.Mode {
	case ModeUnlimited, ModeBudget, ModeBoth:
	default:
		return fmt.Errorf("%w: mission.mode %q must be one of unlimited, budget, both", ErrInvalidConfig, c.Mission.Mode)
	}
	if mb := c.Mission.MaxBattery; c.Mission.RunsBudget() && (!(mb > 0) || math.IsInf(mb, 0)) {
		return fmt.Errorf("%w: mission.max_battery must be a positive finite number", ErrInvalidConfig)
	}
	if !(c.Mission.MoveCost >= 0) || !(c.Mission.BlockedCost >= 0) {
		return fmt.Errorf("%w: mission costs must be non-negative numbers", ErrInvalidConfig)
	}
	if c.Render.Delay < 0 {
		return fmt.Errorf("%w: render.delay must not be negative", ErrInvalidConfig)
	}
	if c.Render.RechargeSteps <= 0 {
		return fmt.Errorf("%w: render.recharge_steps must be a positive integer", ErrInvalidConfig)
	}
	if c.Output.SuffixUnlimited == "" || c.Output.SuffixBudget == "" {
		return fmt.Errorf("%w: output suffixes must not be empty", ErrInvalidConfig)
	}
	if c.Output.SuffixUnlimited == c.Output.SuffixBudget && c.Mission.Mode == ModeBoth {
		return fmt.Errorf("%w: output suffixes must differ when both modes run", ErrInvalidConfig)
	}
	for i, p := range c.Planets {
		if p.Name == "" || p.File == "" {
			return fmt.Errorf("%w: planets[%d] needs both name and file", ErrInvalidConfig, i)
		}
	}
	return nil
}
