package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/litsol/invoicexl/internal/config"
	"github.com/litsol/invoicexl/internal/export"
	"github.com/litsol/invoicexl/internal/invoice"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the configured level.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	service := invoice.NewService(cfg.MaxFileSize, cfg.SupplierName)

	result, err := service.ExtractFile(invoice.ExtractFileRequest{
		Path:           cfg.InputPath,
		ItemMasterPath: cfg.ItemMasterPath,
		Merge:          cfg.Merge,
	})
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}

	if err := export.WriteWorkbook(cfg.OutputPath, result.Rows, result.Merged, result.Totals); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}

	fmt.Printf("Extracted %d line items from %d pages (%s) -> %s\n",
		len(result.Rows), result.Pages, result.Currency, cfg.OutputPath)
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("invoicexl - Invoice PDF to XLSX converter\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
