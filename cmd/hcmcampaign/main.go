// Command hcmcampaign loads a campaign configuration file, assembles both
// armies and prints their ratings.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/hcmcampaign/hcmcampaign/internal/campaign"
	"github.com/hcmcampaign/hcmcampaign/internal/config"
	"github.com/hcmcampaign/hcmcampaign/internal/logging"
	intOtel "github.com/hcmcampaign/hcmcampaign/internal/otel"
	"github.com/hcmcampaign/hcmcampaign/internal/parser"
)

const (
	appName             = "hcmcampaign"
	instrumentationName = "github.com/hcmcampaign/hcmcampaign/cmd/hcmcampaign"
	shutdownTimeout     = 5 * time.Second
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.String("config-dir", ".", "directory containing "+config.FileName)
	flags.String("env-file", ".env", "dotenv file loaded before configuration")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("logs-dir", "./logs", "directory for log files; empty logs to stderr")
	flags.String("format", config.FormatText, "output format: text or yaml")
	flags.Bool("strict", false, "fail when NUM_ROWS, NUM_COLS or EVENT_CODE is missing")
	flags.Bool("all-unit-names", false, "accept every vehicle and infantry name in UNIT_LIST")
	flags.Bool("show-config", false, "print the parsed configuration before the result")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <config-file>\n\nFlags:\n", appName)
		flags.PrintDefaults()
	}
	return flags
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	path := flags.Arg(0)

	configDir, _ := flags.GetString("config-dir")
	envFile, _ := flags.GetString("env-file")
	showConfig, _ := flags.GetBool("show-config")

	// .env first so HCM_* variables are visible to viper
	envErr := godotenv.Load(envFile)

	if err := config.BindFlags(flags); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitError
	}
	cfgErr := config.Load(configDir)

	sessionStart := time.Now()
	logFile, logPath, logErr := openLogFile(config.GetString("logsDir"), sessionStart)
	if logFile != nil {
		defer logFile.Close()
	}

	// a nil *os.File must not become a non-nil io.Writer
	var logOut io.Writer
	if logFile != nil {
		logOut = logFile
	}

	otelCfg := config.GetOTelConfig()
	provider, otelErr := intOtel.New(intOtel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		BatchTimeout: otelCfg.BatchTimeout,
		LogWriter:    logOut,
		PrettyPrint:  otelCfg.PrettyPrint,
	})
	if otelErr != nil {
		provider, _ = intOtel.New(intOtel.Config{})
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}()

	slogManager := logging.NewSlogManager()
	slogManager.Setup(logOut, config.GetString("logLevel"), provider.LoggerProvider())
	logger := slogManager.Logger()
	defer func() { _ = slogManager.Flush(context.Background()) }()

	reportStartup(logger, envFile, envErr, cfgErr, logPath, logErr, otelErr, provider.Enabled())

	slogManager.SetContext(slog.String("campaign", path))

	c, err := campaign.New(path,
		campaign.WithLogger(slogManager.Component("campaign")),
		campaign.WithMeter(provider.Meter(instrumentationName)),
		campaign.WithParserOptions(parserOptions(config.GetParserConfig())...),
	)
	if err != nil {
		logger.Error("Failed to load campaign", "path", path, "error", err)
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitError
	}
	slogManager.SetContext(
		slog.String("campaign", path),
		slog.Int("eventCode", c.Configuration().EventCode),
	)

	if showConfig {
		fmt.Fprintln(stdout, c.ConfigString())
	}

	c.Run(context.Background())
	flushTelemetry(logger, provider)

	if err := writeResult(stdout, c, config.GetOutputConfig()); err != nil {
		logger.Error("Failed to write result", "error", err)
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitError
	}
	return exitOK
}

// flushTelemetry exports the records of a finished run before the result is
// written.
func flushTelemetry(logger *slog.Logger, provider *intOtel.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := provider.Flush(ctx); err != nil {
		logger.Warn("Failed to flush telemetry", "error", err)
	}
}

func parserOptions(pc config.ParserConfig) []parser.Option {
	var opts []parser.Option
	if pc.StrictKeys {
		opts = append(opts, parser.WithStrictKeys())
	}
	if pc.AllUnitNames {
		opts = append(opts, parser.WithAllUnitNames())
	}
	return opts
}

func writeResult(w io.Writer, c *campaign.Campaign, oc config.OutputConfig) error {
	if oc.Format == config.FormatYAML {
		out, err := c.Summary().YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	_, err := fmt.Fprintln(w, c.PrintResult())
	return err
}

// openLogFile creates logsDir and a session log file inside it. An existing
// file of the same name is kept as .old. Empty logsDir disables file logging.
func openLogFile(logsDir string, sessionStart time.Time) (*os.File, string, error) {
	if logsDir == "" {
		return nil, "", nil
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, "", fmt.Errorf("error creating logs directory: %w", err)
	}

	path := logging.LogFilePath(logsDir, appName, sessionStart)
	if _, err := os.Stat(path); err == nil {
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, path, fmt.Errorf("error opening log file: %w", err)
	}
	return f, path, nil
}

func reportStartup(logger *slog.Logger, envFile string, envErr, cfgErr error, logPath string, logErr, otelErr error, otelEnabled bool) {
	switch {
	case envErr == nil:
		logger.Info("Loaded env file", "path", envFile)
	case !errors.Is(envErr, fs.ErrNotExist):
		logger.Warn("Failed to load env file", "path", envFile, "error", envErr)
	}

	switch {
	case cfgErr == nil:
		logger.Info("Loaded config")
	case errors.Is(cfgErr, config.ErrNotFound):
		logger.Info("No config file found, using defaults", "error", cfgErr)
	default:
		logger.Warn("Failed to load config, using defaults!", "error", cfgErr)
	}

	if logErr != nil {
		logger.Error("Failed to create/open log file!", "error", logErr, "path", logPath)
	} else if logPath != "" {
		logger.Info("Logging to file", "path", logPath)
	}

	if otelErr != nil {
		logger.Error("Failed to initialize OTel provider", "error", otelErr)
	} else if otelEnabled {
		logger.Info("OTel provider initialized", "file", logPath)
	}
}
