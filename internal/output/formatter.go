package output

import (
	"fmt"
	"os"

	"github.com/jenian/i18ngrd/internal/analyzer"
	"golang.org/x/term"
)

var (
	// Color support detection
	colorEnabled = initColorSupport()
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// initColorSupport initializes color support for the terminal
func initColorSupport() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	// On Windows, ANSI escape sequences need to be enabled explicitly
	// (handled in formatter_windows.go)
	return enableANSI()
}

// getColor returns the color code if colors are enabled, empty string otherwise
func getColor(code string) string {
	if colorEnabled {
		return code
	}
	return ""
}

// Summary prints a colored console summary of the reconciliation to
// stdout: each missing key with its first occurrence, each unused key
// with its first definition site, and ignore notes. Iteration is in
// sorted key order.
func Summary(result analyzer.ScanResult) {
	fmt.Printf("\n%sMissing keys (used in code but not in JSON):%s\n", getColor(colorBold), getColor(colorReset))
	missingKeys := result.MissingKeys()
	if len(missingKeys) == 0 {
		fmt.Println("  none!")
	}
	for _, key := range missingKeys {
		fmt.Printf("  %s%s%s\n", getColor(colorRed), key, getColor(colorReset))
		if usages := result.Missing[key]; len(usages) > 0 {
			first := usages[0]
			fmt.Printf("    %sfirst seen in:%s %s%s%s:%s%d%s\n",
				getColor(colorGray), getColor(colorReset),
				getColor(colorCyan), first.File, getColor(colorReset),
				getColor(colorYellow), first.Line, getColor(colorReset))
		}
	}

	fmt.Printf("\n%sUnused keys (present in JSON but not used in code):%s\n", getColor(colorBold), getColor(colorReset))
	if len(result.Unused) == 0 {
		fmt.Println("  none!")
	}
	for _, key := range result.Unused {
		fmt.Printf("  %s%s%s\n", getColor(colorYellow), key, getColor(colorReset))
		if defs := result.Definitions[key]; len(defs) > 0 {
			first := defs[0]
			fmt.Printf("    %sdefined in:%s %s%s%s (%s)\n",
				getColor(colorGray), getColor(colorReset),
				getColor(colorCyan), first.File, getColor(colorReset), first.Language)
		}
	}

	if result.IgnoredMissing > 0 {
		fmt.Printf("\n%sNote:%s %d missing key(s) were ignored (configured in .i18ngrd.config)\n",
			getColor(colorGray), getColor(colorReset), result.IgnoredMissing)
	}
	if result.IgnoredFromFolders > 0 {
		fmt.Printf("%sNote:%s %d key(s) found only in ignored folders were excluded\n",
			getColor(colorGray), getColor(colorReset), result.IgnoredFromFolders)
	}

	if !HasIssues(result) {
		fmt.Printf("\n%s%s✓ No issues found. Translations and code are in sync.%s\n",
			getColor(colorGreen), getColor(colorBold), getColor(colorReset))
	}
}

// HasIssues returns true if the reconciliation found missing or unused
// keys. Ignored keys do not count as issues.
func HasIssues(result analyzer.ScanResult) bool {
	return len(result.Missing) > 0 || len(result.Unused) > 0
}
