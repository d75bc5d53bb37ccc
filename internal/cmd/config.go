package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/adversarial-critique/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or create adversarial-critique configuration",
		Long: `View or create adversarial-critique configuration.

Without arguments, displays the effective configuration.`,
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, a)
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigPath(cmd, a)
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: `Create a default config file at ~/.config/adversarial-critique/config.yaml,
or at the path given with --config. An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		// The target file need not exist yet, so skip reading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, a)
		},
	}

	configCmd.RunE = configShowCmd.RunE
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	return configCmd
}

func runConfigShow(cmd *cobra.Command, a *app) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := a.cfgUsed; used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigPath(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()

	if used := a.cfgUsed; used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", config.ConfigFile())
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintf(out, "\nEnvironment variables: %s_* (e.g., %s_MODELS_AVAILABLE)\n", config.EnvPrefix, config.EnvPrefix)

	return nil
}

const configHeader = `# adversarial-critique configuration
#
# models.available: model families taking part, in priority order. The
#   strategist is removed and the rest become critics; the first two
#   critics debate each other.
# roles.strategist: optional override. When empty the strategist comes from
#   ADVERSARIAL_CRITIQUE_STRATEGIST, then defaults to "claude".
# logging.level: debug, info, warn or error.
# logging.dir: directory for debug.log (empty logs to stderr).

`

func runConfigInit(cmd *cobra.Command, a *app) error {
	configFile := a.cfgFile
	if configFile == "" {
		configFile = config.ConfigFile()
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.WriteFile(configFile, append([]byte(configHeader), body...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}
