package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jenian/i18ngrd/internal/checker"
	"github.com/jenian/i18ngrd/internal/config"
	"github.com/jenian/i18ngrd/internal/output"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "i18ngrd",
		Short: "Scan a codebase for localization key inconsistencies",
		Long:  "A CLI tool that reconciles localization keys referenced in source code with keys declared in JSON translation files.",
	}

	scanCmd = &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a codebase and report missing and unused keys",
		Long:  "Recursively scan a directory for localization key usages, compare them with JSON translation files, and write a report.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Create a .i18ngrd.config file in the current directory",
		Long:  "Creates a .i18ngrd.config file with default configuration in the current directory.",
		RunE:  runInitConfig,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "Print the version number of i18ngrd",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}

	// Flags
	scanPath     string
	fixMissing   bool
	outputPath   string
	outputFormat string
	silent       bool
	noHeader     bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanPath, "path", "p", ".", "Path to scan (default: current directory)")
	scanCmd.Flags().BoolVar(&fixMissing, "fix", false, "Generate suggestions to fix missing keys")
	scanCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for the report (default: i18n_report.<format>, \"-\" for stdout)")
	scanCmd.Flags().StringVar(&outputFormat, "format", "text", "Report format: text or html")
	scanCmd.Flags().BoolVar(&silent, "silent", false, "Silent mode (exit code only)")
	scanCmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip printing the header")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := scanPath
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", absPath)
	}

	if outputFormat != "text" && outputFormat != "html" {
		return fmt.Errorf("unsupported format: %s (expected text or html)", outputFormat)
	}

	if !noHeader && !silent {
		printHeader()
	}

	cfg, err := config.LoadConfig(absPath)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", config.ConfigFileName, err)
		}
		// Continue with default config
		cfg = &config.Config{}
	}

	if !silent {
		fmt.Fprintf(os.Stderr, "Scanning %s...\n", absPath)
	}

	result, err := checker.Scan(absPath, checker.Options{
		Fix:    fixMissing,
		Config: cfg,
		Warnf: func(format string, a ...interface{}) {
			if !silent {
				fmt.Fprintf(os.Stderr, format+"\n", a...)
			}
		},
	})
	if err != nil {
		return err
	}

	if !silent {
		fmt.Fprintf(os.Stderr, "Found %d code file(s) and %d translation file(s)\n",
			result.CodeFileCount, len(result.TranslationFiles))
	}

	if err := writeReport(result); err != nil {
		return err
	}

	if !silent {
		output.Summary(result.ScanResult)
	}

	if output.HasIssues(result.ScanResult) {
		os.Exit(1)
	}

	return nil
}

// writeReport renders the report in the requested format and writes it
// to the destination file or stdout.
func writeReport(result *checker.Result) error {
	var report string
	var err error
	switch outputFormat {
	case "html":
		report, err = output.RenderHTML(result.ScanResult, result.Suggestions, fixMissing)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	default:
		report = output.RenderText(result.ScanResult, result.Suggestions, fixMissing)
	}

	dest := outputPath
	if dest == "-" {
		fmt.Print(report)
		return nil
	}
	if dest == "" {
		ext := "txt"
		if outputFormat == "html" {
			ext = "html"
		}
		dest = "i18n_report." + ext
	}

	if err := os.WriteFile(dest, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !silent {
		fmt.Fprintf(os.Stderr, "Detailed report written to: %s\n", dest)
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	configPath := config.ConfigFileName

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in the current directory", config.ConfigFileName)
	}

	configContent := `# .i18ngrd.config
# Configuration file for i18ngrd

# Filename of the default/base language translation file, preferred as
# the target for fix suggestions.
# base_language_file: en.json

ignores:
  # Keys that are resolved in custom ways (built at runtime, provided by
  # a backend). These will not be reported as missing.
  missing:
    # - dynamic.key
    # - backend.provided.key

  # Folders to ignore when reporting missing keys (useful for fixtures
  # and generated code)
  folders:
    # - fixtures
    # - generated
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", config.ConfigFileName, err)
	}

	fmt.Printf("Created %s in the current directory\n", config.ConfigFileName)
	return nil
}

func printHeader() {
	header := ` _ _  ___                        _
(_) |( _ ) _ _   __ _  _ _  __| |
| | |/ _ \| ' \ / _' || '_|/ _' |
|_|_|\___/|_||_|\__, ||_|  \__,_|
                |___/
`
	fmt.Print(header)
	fmt.Printf("Version: %s\n\n", Version)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
