package config

import (
	"sync/atomic"
	"time"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Provider    ProviderConfig  `mapstructure:"provider"`
	Lookup      LookupConfig    `mapstructure:"lookup"`
	Alerts      AlertsConfig    `mapstructure:"alerts"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// ProviderConfig configures the OpenWeatherMap current-weather endpoint.
// APIKey has no default; startup fails without one.
type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Units   string `mapstructure:"units"`
	Timeout int    `mapstructure:"timeout"`
}

type LookupConfig struct {
	CacheTTL int `mapstructure:"cache_ttl"`
}

// AlertsConfig holds the banner thresholds. Temperatures are in the
// provider units (metric by default).
type AlertsConfig struct {
	HeatTemp float64 `mapstructure:"heat_temp"`
	ColdTemp float64 `mapstructure:"cold_temp"`
	SunTemp  float64 `mapstructure:"sun_temp"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

func (p ProviderConfig) TimeoutDuration() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

func (l LookupConfig) CacheTTLDuration() time.Duration {
	return time.Duration(l.CacheTTL) * time.Second
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Provider: ProviderConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5",
			APIKey:  "",
			Units:   "metric",
			Timeout: 10,
		},
		Lookup: LookupConfig{
			CacheTTL: 60,
		},
		Alerts: AlertsConfig{
			HeatTemp: 35.0,
			ColdTemp: 5.0,
			SunTemp:  28.0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "tempo:4317",
		},
	}
}
