package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Iron-Ham/adversarial-critique/internal/config"
	"github.com/Iron-Ham/adversarial-critique/internal/report"
	"github.com/Iron-Ham/adversarial-critique/internal/roles"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce collapses the burst of events many editors produce for a
// single save.
const watchDebounce = 50 * time.Millisecond

type rolesOptions struct {
	strategist string
	format     string
	watch      bool
}

func newRolesCmd(a *app) *cobra.Command {
	opts := &rolesOptions{}

	rolesCmd := &cobra.Command{
		Use:   "roles",
		Short: "Show the strategist, critics and judge for the current configuration",
		Long: `Resolve and print the role assignment.

Examples:
  # Use the configured or detected strategist
  adversarial-critique roles

  # Override the strategist for this run
  adversarial-critique roles --strategist gemini

  # Machine-readable output
  adversarial-critique roles --format json

  # Re-resolve whenever the config file changes
  adversarial-critique roles --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(cmd, a, opts)
		},
	}

	rolesCmd.Flags().StringVar(&opts.strategist, "strategist", "", "strategist model family (overrides roles.strategist)")
	rolesCmd.Flags().StringVarP(&opts.format, "format", "o", "text", "output format: text, json, yaml")
	rolesCmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep running and re-resolve when the config file changes")

	return rolesCmd
}

func runRoles(cmd *cobra.Command, a *app, opts *rolesOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	// Overrides go in before any load so the watcher goroutine only ever
	// reads the viper instance.
	if opts.strategist != "" {
		a.v.Set("roles.strategist", opts.strategist)
	}

	out := cmd.OutOrStdout()
	renderer := report.NewRenderer(format, a.styled(out))

	if !opts.watch {
		return a.renderRoles(out, renderer, configUpdate{})
	}

	if a.cfgUsed == "" {
		return fmt.Errorf("--watch requires a config file; pass --config or run 'adversarial-critique config init'")
	}

	// A failed resolution is reported but does not stop the watch, since the
	// next edit may fix it.
	render := func(u configUpdate) error {
		if err := a.renderRoles(out, renderer, u); err != nil && !renderer.Structured() {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
		return nil
	}
	_ = render(configUpdate{})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Viper rereads the file on its own goroutine and runs this callback
	// there, so the config is decoded on that goroutine too and only the
	// result crosses over.
	updates := make(chan configUpdate)
	a.v.OnConfigChange(func(e fsnotify.Event) {
		if !configChanged(e) {
			return
		}
		cfg, err := config.Load(a.v)
		select {
		case updates <- configUpdate{cfg: cfg, err: err, loaded: true}:
		case <-ctx.Done():
		}
	})
	a.v.WatchConfig()

	return watchLoop(ctx, updates, watchDebounce, render)
}

// configUpdate carries a config decoded off the command goroutine. The zero
// value means "load it now".
type configUpdate struct {
	cfg    *config.Config
	err    error
	loaded bool
}

// configChanged reports whether e may have changed the file's contents.
func configChanged(e fsnotify.Event) bool {
	return e.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// renderRoles resolves roles from u, loading the config first when u carries
// none, and renders them. With a structured format, resolution errors are
// also written to out.
func (a *app) renderRoles(out io.Writer, renderer *report.Renderer, u configUpdate) error {
	var cfg *config.Config
	var err error
	if u.loaded {
		cfg, err = u.cfg, u.err
		if err == nil {
			err = a.openLogger(cfg)
		}
	} else {
		cfg, err = a.loadConfig()
	}
	if err != nil {
		if renderer.Structured() {
			if rErr := renderer.RenderError(out, err); rErr != nil {
				return rErr
			}
		}
		return err
	}

	resolver := roles.NewResolver(a.env, a.logger)
	assignment, origin, err := resolver.Resolve(cfg)
	if err != nil {
		if renderer.Structured() {
			if rErr := renderer.RenderError(out, err); rErr != nil {
				return rErr
			}
		}
		return err
	}

	return renderer.Render(out, report.New(assignment, origin))
}

// watchLoop renders the most recent update once updates have been quiet for
// debounce. It returns when ctx is done, or flushes the pending update and
// returns when updates closes.
func watchLoop(ctx context.Context, updates <-chan configUpdate, debounce time.Duration, render func(configUpdate) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	debounceTimer := time.NewTimer(debounce)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}
	defer debounceTimer.Stop()

	var pending *configUpdate

	for {
		select {
		case <-ctx.Done():
			return nil

		case u, ok := <-updates:
			if !ok {
				if pending != nil {
					return render(*pending)
				}
				return nil
			}
			pending = &u
			debounceTimer.Reset(debounce)

		case <-debounceTimer.C:
			if pending == nil {
				continue
			}
			u := *pending
			pending = nil
			if err := render(u); err != nil {
				return err
			}
		}
	}
}
