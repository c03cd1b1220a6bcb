package comparison

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Matching strategies.
const (
	StrategyGreedy  = "greedy"  // per-row best match, candidates reusable (default)
	StrategyOptimal = "optimal" // one-to-one maximum-weight assignment, opt-in
)

// Config manages pipeline configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("matching.strategy", StrategyGreedy)
	v.SetDefault("comparison.compute_nmi", true)

	v.SetDefault("output.precision", 4)

	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) MatchingStrategy() string { return c.v.GetString("matching.strategy") }
func (c *Config) ComputeNMI() bool         { return c.v.GetBool("comparison.compute_nmi") }
func (c *Config) Precision() int           { return c.v.GetInt("output.precision") }
func (c *Config) LogLevel() string         { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "comparison").Logger()
}
