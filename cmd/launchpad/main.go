package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"launchpad/internal/config"
	"launchpad/internal/errors"
	"launchpad/internal/log"
	"launchpad/internal/shell"
	"launchpad/pkg/types"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// The first signal asks the shell to stop; a second one kills the process
	context.AfterFunc(ctx, stop)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	log.Close()
	os.Exit(code)
}

// application holds the streams and flags shared by every command
type application struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgFile  string
	shell    string
	debug    bool
	jsonLogs bool

	exitCode int
}

// run executes the command line and returns the process exit status.
// Usage errors exit with 1 before any shell is created; once a shell has
// been selected the status is always 0.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	app := &application{in: in, out: out, errOut: errOut}

	root := newRootCmd(app)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return app.exitCode
}

func newRootCmd(app *application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launchpad",
		Short: "Start one of several user interfaces",
		Long: `Launchpad picks exactly one user interface shell at startup and runs it
until you quit.

Shells: text (default), window, imgui, toolkit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runShell(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/launchpad/config.yaml)")
	rootCmd.Flags().StringVarP(&app.shell, "shell", "s", "", "shell to run: "+strings.Join(types.ShellKindNames(), ", "))
	rootCmd.Flags().BoolVar(&app.debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&app.jsonLogs, "json-logs", false, "write logs as JSON")

	_ = rootCmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return types.ShellKindNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(shellsCmd())
	rootCmd.AddCommand(configCmd(app))

	return rootCmd
}

// loadConfig reads the --config file, or the default location
func (app *application) loadConfig() (*config.Config, error) {
	if app.cfgFile != "" {
		return config.LoadConfigFile(app.cfgFile)
	}
	return config.LoadConfig()
}

// configPath returns the --config file, or the default location
func (app *application) configPath() (string, error) {
	if app.cfgFile != "" {
		return app.cfgFile, nil
	}
	return config.DefaultPath()
}

func (app *application) setupLogging(cfg *config.Config) {
	opts := []log.Option{
		log.WithOutput(app.errOut),
		log.WithLevel(cfg.Logging.Level),
	}
	if app.jsonLogs || cfg.Logging.JSON {
		opts = append(opts, log.WithJSON())
	}
	if cfg.Logging.File != "" {
		opts = append(opts, log.WithFile(cfg.Logging.File))
	}
	log.Configure(opts...)
	log.SetDebug(app.debug)
}

func (app *application) runShell(ctx context.Context) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	app.setupLogging(cfg)

	kind, err := shell.Resolve(app.shell, cfg)
	if err != nil {
		return err
	}

	log.LogWithFields(
		log.F("shell", kind.String()),
		log.F("config", cfg.Path()),
	).Debug("Selected shell")

	s := shell.Select(shell.Options{
		Kind:   kind,
		Config: cfg,
		In:     app.in,
		Out:    app.out,
		Err:    app.errOut,
	})
	app.exitCode = shell.Execute(ctx, s)
	return nil
}
