package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// DefaultSupplierName is the supplier this invoice layout belongs to.
	DefaultSupplierName = "VIR VALVOINDUSTRIA ING. RIZZIO S.P.A."
)

// Config holds all configuration for the invoice converter.
type Config struct {
	// Input/output paths
	InputPath      string
	OutputPath     string
	ItemMasterPath string

	// Extraction configuration
	SupplierName string
	Merge        bool

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SupplierName: DefaultSupplierName,
		Version:      "1.0.0",
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}

	// Default the output next to the input
	if cfg.OutputPath == "" && cfg.InputPath != "" {
		cfg.OutputPath = DeriveOutputPath(cfg.InputPath)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("INVOICEXL")
	viper.AutomaticEnv()

	viper.SetDefault("input", cfg.InputPath)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("items", cfg.ItemMasterPath)
	viper.SetDefault("supplier", cfg.SupplierName)
	viper.SetDefault("merge", cfg.Merge)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("input", cfg.InputPath, "Invoice PDF file to process")
	pflag.String("output", cfg.OutputPath, "Output XLSX path (default: input path with .xlsx extension)")
	pflag.String("items", cfg.ItemMasterPath, "Item master XLSX for catalog enrichment (optional)")
	pflag.String("supplier", cfg.SupplierName, "Supplier name written into every row")
	pflag.Bool("merge", cfg.Merge, "Also emit a sheet with near-duplicate rows consolidated")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("items", pflag.Lookup("items"))
	_ = viper.BindPFlag("supplier", pflag.Lookup("supplier"))
	_ = viper.BindPFlag("merge", pflag.Lookup("merge"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ninvoicexl - Convert a VIR invoice PDF into an XLSX line-item table\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=invoice.pdf                         # write invoice.xlsx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=invoice.pdf --merge                 # add a consolidated sheet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=invoice.pdf --items=items.xlsx      # enrich from item master\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_INPUT        Invoice PDF path\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_OUTPUT       Output XLSX path\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_ITEMS        Item master XLSX path\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_SUPPLIER     Supplier name\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_MERGE        Emit merged sheet\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  INVOICEXL_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.InputPath = viper.GetString("input")
	cfg.OutputPath = viper.GetString("output")
	cfg.ItemMasterPath = viper.GetString("items")
	cfg.SupplierName = viper.GetString("supplier")
	cfg.Merge = viper.GetBool("merge")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// DeriveOutputPath swaps the input's extension for .xlsx.
func DeriveOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input PDF path cannot be empty")
	}

	if c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	if c.SupplierName == "" {
		return errors.New("supplier name cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, OutputPath: %s, ItemMasterPath: %s, Merge: %t, LogLevel: %s, MaxFileSize: %d}",
		c.InputPath, c.OutputPath, c.ItemMasterPath, c.Merge, c.LogLevel, c.MaxFileSize)
}
