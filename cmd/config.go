/*
Copyright © 2025 Hello Project
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/common-creation/hello/internal/config"
)

var (
	outputFormat string
	forceInit    bool
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hello configuration",
	Long: `View, create, and validate hello configuration settings.

Only logging is configurable: level, format, output, timestamps,
caller reporting, prefix and color.`,
}

// showCmd shows the current configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the effective configuration after file, environment
and flag overrides have been applied.`,
	RunE: runConfigShow,
}

// initCmd initializes a new configuration file
var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Initialize a new configuration file",
	Long: `Write a commented sample configuration file.

The file is written to PATH, or to the --config location, or to
~/.config/hello/config.yaml. An existing file is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

// validateCmd validates the configuration
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long:  `Validate the configuration file and environment overrides.`,
	RunE:  runConfigValidate,
}

// pathCmd prints the config file location
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(validateCmd)
	configCmd.AddCommand(pathCmd)

	showCmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "output format (yaml, json)")
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		ShowWarning("Configuration invalid, showing defaults: %v", cfgErr)
	}

	var output []byte
	var err error

	switch strings.ToLower(outputFormat) {
	case "json":
		output, err = json.MarshalIndent(GetConfig(), "", "  ")
		output = append(output, '\n')
	case "yaml", "yml":
		output, err = yaml.Marshal(GetConfig())
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(output)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if err := config.CreateSampleConfig(path, forceInit); err != nil {
		return err
	}

	ShowSuccess(cmd, "Configuration written to %s", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return fmt.Errorf("configuration is invalid: %w", cfgErr)
	}
	if err := GetConfig().Validate(); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	ShowSuccess(cmd, "Configuration is valid")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.NewLoader().GetConfigPath(cfgFile))
	return nil
}
