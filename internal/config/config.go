package config

import (
	"os"
	"strconv"
	"strings"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultScanCommand   = "/bin/bash searchWifi.sh"
	DefaultReportPath    = "ssids.txt"
	DefaultDatabase      = "/var/lib/ssidwatch/observations.db"
	DefaultCPU           = 0
	DefaultRTPriority    = 49
	DefaultQueueCapacity = 32
	DefaultLogLevel      = "warning"

	minRTPriority = 1
	maxRTPriority = 99
	minQueueCap   = 2
)

// Config holds the full runtime configuration. The sampling period is the
// single positional argument; everything else comes from flags, the TOML
// config file or SSIDWATCH_* environment variables.
type Config struct {
	Period        uint   `mapstructure:"-"`
	ScanCommand   string `mapstructure:"scan_command"`
	Report        string `mapstructure:"report"`
	Database      string `mapstructure:"database"`
	Telemetry     bool   `mapstructure:"telemetry"`
	CPU           int    `mapstructure:"cpu"`
	RTPriority    int    `mapstructure:"rt_priority"`
	QueueCapacity int    `mapstructure:"queue_capacity"`
	LogLevel      string `mapstructure:"log_level"`
	Debug         bool   `mapstructure:"debug"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load parses flags, the config file and environment, then the mandatory
// positional period argument.
func Load() (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet("ssidwatch", pflag.ContinueOnError)
	fs.String("scan-command", DefaultScanCommand, "Command used to discover SSIDs")
	fs.String("report", DefaultReportPath, "Path of the rewritten report file")
	fs.String("database", DefaultDatabase, "Path of the observation database")
	fs.Bool("telemetry", false, "Record observations to the database")
	fs.Int("cpu", DefaultCPU, "CPU core the process is pinned to")
	fs.Int("rt-priority", DefaultRTPriority, "Round-robin priority for both tasks")
	fs.Int("queue-capacity", DefaultQueueCapacity, "Capacity of the sample queue")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrUsage, err)
	}

	v := viper.New()
	v.SetDefault("scan_command", DefaultScanCommand)
	v.SetDefault("report", DefaultReportPath)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("telemetry", false)
	v.SetDefault("cpu", DefaultCPU)
	v.SetDefault("rt_priority", DefaultRTPriority)
	v.SetDefault("queue_capacity", DefaultQueueCapacity)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)

	v.SetConfigName("ssidwatch")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SSIDWATCH")
	v.AutomaticEnv()

	if path := os.Getenv("SSIDWATCH_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Command line flags override config file values
	fs.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, errFactory.WithData(errors.ErrUsage, len(rest))
	}

	period, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidPeriod, err)
	}
	cfg.Period = uint(period)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against the operational limits.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Period < 1 {
		return errFactory.WithData(errors.ErrInvalidPeriod, c.Period)
	}
	if c.ScanCommand == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "scan command must not be empty")
	}
	if c.Report == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "report path must not be empty")
	}
	if c.Telemetry && c.Database == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "telemetry requires a database path")
	}
	if c.CPU < 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, c.CPU)
	}
	if c.RTPriority < minRTPriority || c.RTPriority > maxRTPriority {
		return errFactory.WithData(errors.ErrInvalidConfig, c.RTPriority)
	}
	if c.QueueCapacity < minQueueCap {
		return errFactory.WithData(errors.ErrInvalidConfig, c.QueueCapacity)
	}

	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}
