// Package cmd implements the adversarial-critique command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/adversarial-critique/internal/config"
	"github.com/Iron-Ham/adversarial-critique/internal/logging"
	"github.com/Iron-Ham/adversarial-critique/internal/roles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app carries the state shared by every command in one invocation.
type app struct {
	v       *viper.Viper
	env     roles.LookupFunc
	cfgFile string
	// cfgUsed is the file ReadInConfig found, empty when running on defaults.
	cfgUsed string

	logLevel string
	noColor  bool

	logger *logging.Logger
}

func newApp(env roles.LookupFunc) *app {
	return &app{
		v:   viper.New(),
		env: env,
	}
}

// NewRootCmd builds the command tree reading the process environment.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp(roles.OSLookup))
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adversarial-critique",
		Short: "Resolve strategist, critic and judge roles for a multi-model debate",
		Long: `adversarial-critique decides which model family proposes a plan (the
strategist), which families critique it, and which family judges the
critique exchange.

The strategist comes from, in order: roles.strategist in the config file,
the ADVERSARIAL_CRITIQUE_STRATEGIST environment variable, or "claude".
Every other family in models.available becomes a critic. The judge is the
strategist's family running as an isolated instance; it grades the critics'
arguments, not the plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return a.logger.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/adversarial-critique/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(newRolesCmd(a))
	rootCmd.AddCommand(newPairCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the root command, cancelling on ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) initConfig() error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath(".")
	}

	config.BindEnv(a.v)

	if a.logLevel != "" {
		a.v.Set("logging.level", a.logLevel)
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	a.cfgUsed = a.v.ConfigFileUsed()
	return nil
}

// loadConfig validates the effective configuration and opens the logger it
// describes.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, err
	}
	if err := a.openLogger(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger opens the logger described by cfg on first use.
func (a *app) openLogger(cfg *config.Config) error {
	if a.logger != nil {
		return nil
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	a.logger = logger.WithComponent("cli")
	a.logger.Debug("config loaded",
		"config_file", a.cfgUsed,
		"available", cfg.Models.Available,
	)
	return nil
}

// styled reports whether text output to w should carry terminal styling.
func (a *app) styled(w io.Writer) bool {
	if a.noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
