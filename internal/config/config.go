// Package config provides configuration loading for converter defaults.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the py2toml configuration. All fields are renderer or
// logging defaults; conversion semantics are not configurable.
type Config struct {
	// Readme is the readme filename written into the manifest.
	// Env: PY2TOML_README, Default: "README.md"
	Readme string `mapstructure:"readme"`

	// PythonConstraint is the python dependency constraint used when the
	// source declares no python_requires.
	// Env: PY2TOML_PYTHON_CONSTRAINT, Default: ">=3.5"
	PythonConstraint string `mapstructure:"pythonConstraint"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Readme:           "README.md",
		PythonConstraint: ">=3.5",
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	defaults := DefaultConfig()
	if c.Readme == "" {
		c.Readme = defaults.Readme
	}
	if c.PythonConstraint == "" {
		c.PythonConstraint = defaults.PythonConstraint
	}
	return c
}

// Timestamps resolves the timestamps setting, defaulting to false.
func (c *Config) Timestamps() bool {
	return c.Log.Timestamps != nil && *c.Log.Timestamps
}
