/*
Copyright © 2025 Hello Project
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information variables
// These are set at build time using ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

var (
	verbose    bool
	jsonOutput bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long: `Display version information about hello.

Shows the version number, commit, build date and platform.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed version information")
	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "output version information as JSON")
}

// SetVersion sets the version information for the application
func SetVersion(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		Date = date
	}
	rootCmd.Version = GetVersionString()
}

func runVersion(cmd *cobra.Command, args []string) error {
	versionInfo := getVersionInfo()
	out := cmd.OutOrStdout()

	if jsonOutput {
		return outputJSON(out, versionInfo)
	}

	if verbose {
		return outputVerbose(out, versionInfo)
	}

	fmt.Fprintf(out, "hello version %s\n", versionInfo.Version)
	return nil
}

// VersionInfo is what the version command reports
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func getVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		fillFromVCS(&info, buildInfo.Settings)
	}

	return info
}

// fillFromVCS uses the embedded VCS stamp for values ldflags left unset
func fillFromVCS(info *VersionInfo, settings []debug.BuildSetting) {
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = setting.Value
			}
		}
	}
}

func outputJSON(w io.Writer, info VersionInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

func outputVerbose(w io.Writer, info VersionInfo) error {
	fmt.Fprintf(w, "hello version %s\n", info.Version)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Built: %s\n", info.Date)
	fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)
	return nil
}

// GetVersionString returns a formatted version string
func GetVersionString() string {
	if Version == "dev" {
		return fmt.Sprintf("hello %s (commit: %s)", Version, getShortCommit())
	}
	return fmt.Sprintf("hello %s", Version)
}

func getShortCommit() string {
	if len(Commit) >= 7 {
		return Commit[:7]
	}
	return Commit
}
