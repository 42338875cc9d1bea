// Package config loads runtime settings from hcmcampaign.cfg.json, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "hcmcampaign.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. HCM_LOGLEVEL=debug.
const EnvPrefix = "HCM"

// ErrNotFound is returned by Load when the directory has no configuration
// file. Defaults remain in effect.
var ErrNotFound = errors.New("config file not found")

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ParserConfig controls how campaign files are read
type ParserConfig struct {
	StrictKeys   bool `json:"strictKeys" mapstructure:"strictKeys"`
	AllUnitNames bool `json:"allUnitNames" mapstructure:"allUnitNames"`
}

// OutputConfig controls how results are reported
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	PrettyPrint  bool          `json:"prettyPrint" mapstructure:"prettyPrint"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("parser.strictKeys", false)
	viper.SetDefault("parser.allUnitNames", false)

	viper.SetDefault("output.format", FormatText)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "hcmcampaign")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.prettyPrint", true)
}

// Load reads configuration from the JSON file in configDir and sets default
// values. Environment variables prefixed with HCM override both.
func Load(configDir string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w in %s", ErrNotFound, configDir)
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// flagKeys maps command-line flag names onto configuration keys
var flagKeys = map[string]string{
	"log-level":      "logLevel",
	"logs-dir":       "logsDir",
	"strict":         "parser.strictKeys",
	"all-unit-names": "parser.allUnitNames",
	"format":         "output.format",
}

// BindFlags lets flags present in fs override file and environment values.
// Flags the user did not set leave the configured value alone.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetParserConfig returns the parser settings
func GetParserConfig() ParserConfig {
	return ParserConfig{
		StrictKeys:   viper.GetBool("parser.strictKeys"),
		AllUnitNames: viper.GetBool("parser.allUnitNames"),
	}
}

// GetOutputConfig returns the output settings. Unknown formats fall back to text.
func GetOutputConfig() OutputConfig {
	format := strings.ToLower(viper.GetString("output.format"))
	if format != FormatYAML {
		format = FormatText
	}
	return OutputConfig{Format: format}
}

// GetOTelConfig returns the OpenTelemetry settings
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		PrettyPrint:  viper.GetBool("otel.prettyPrint"),
	}
}
