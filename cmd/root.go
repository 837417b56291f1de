/*
Copyright © 2025 Hello Project

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/common-creation/hello/internal/config"
	"github.com/common-creation/hello/internal/greeter"
	"github.com/common-creation/hello/internal/logging"
)

var (
	cfgFile   string
	debugMode bool
	noColor   bool
	cfg       *config.Config
	cfgErr    error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hello [args...]",
	Short: "hello - greeting logger and integer adder",
	Long: `hello writes a single greeting to the configured log sink and exits.

Positional arguments are accepted and ignored. Use the add subcommand
to sum two integers.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HELLO_CONFIG_PATH, ./config.yaml, then $HOME/.config/hello/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json or logfmt (overrides config)")
	rootCmd.PersistentFlags().String("log-output", "", "log destination: stderr, stdout or a file path (overrides config)")

	bindViper()
}

// bindViper binds the global flags and HELLO_* environment to viper
func bindViper() {
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	// Environment variable support
	viper.SetEnvPrefix("HELLO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cfg, cfgErr = loadConfiguration()
	if cfgErr != nil {
		// Commands that need a valid config report cfgErr themselves
		cfg = config.NewDefaultConfig()
	}

	applyFlagOverrides(cfg)
}

// loadConfiguration resolves the config file once, so the file viper
// reads is the one the loader decodes and `config path` reports.
func loadConfiguration() (*config.Config, error) {
	loader := config.NewLoader()

	path := loader.FindConfigPath(cfgFile)
	if path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return loader.Load(path)
}

// applyFlagOverrides lets command line flags win over file and env settings
func applyFlagOverrides(cfg *config.Config) {
	if debugMode || viper.GetBool("debug") {
		dev := logging.DevelopmentConfig()
		cfg.Logging.Level = dev.Level
		cfg.Logging.Caller = dev.Caller
	}
	if format := viper.GetString("log.format"); format != "" {
		cfg.Logging.Format = format
	}
	if output := viper.GetString("log.output"); output != "" {
		cfg.Logging.Output = output
	}
	if noColor || viper.GetBool("no_color") || os.Getenv("NO_COLOR") != "" {
		cfg.Logging.Color = false
	}
}

// runRoot is executed when no subcommands are provided
func runRoot(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return fmt.Errorf("invalid configuration: %w", cfgErr)
	}

	logger, closer, err := logging.New(GetConfig().Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer closer.Close()

	greeter.New(logger).Greet()
	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return cfg
}

// ShowWarning displays a warning message to the user
func ShowWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor && os.Getenv("NO_COLOR") == "" {
		fmt.Fprintf(os.Stderr, "\033[33mWarning: %s\033[0m\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
	}
}

// ShowSuccess displays a success message to the user
func ShowSuccess(cmd *cobra.Command, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor && os.Getenv("NO_COLOR") == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓ %s\033[0m\n", msg)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", msg)
	}
}
