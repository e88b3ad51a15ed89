package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

// rootCmd carries the global flags and the App built for the invoked command.
type rootCmd struct {
	configFile string
	serverURL  string
	dataDir    string
	timeout    time.Duration

	in  io.Reader
	out io.Writer

	newApp func(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error)
	app    *App
}

func newRootCmd(in io.Reader, out io.Writer) *rootCmd {
	return &rootCmd{in: in, out: out, newApp: NewApp}
}

func (r *rootCmd) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gophauth-client",
		Short: "Terminal client for the gophauth service",
		Long: `gophauth-client registers accounts and logs in against a gophauth server.
The issued token is kept in a local cache so whoami works across runs.
Run without a command to start an interactive shell.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: r.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r.app.Shell(cmd.Context())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&r.configFile, "config", "", "JSON config file path")
	cmd.PersistentFlags().StringVar(&r.serverURL, "server", "", "server base URL")
	cmd.PersistentFlags().StringVar(&r.dataDir, "data-dir", "", "directory for the local cache")
	cmd.PersistentFlags().DurationVar(&r.timeout, "timeout", 0, "per-request timeout")

	cmd.AddCommand(
		r.action("register", "Create an account and log in", (*App).Register),
		r.action("login", "Log in and cache the session token", (*App).Login),
		r.action("whoami", "Show the profile of the cached session", (*App).WhoAmI),
		r.action("logout", "Forget the cached session", (*App).Logout),
	)

	return cmd
}

func (r *rootCmd) action(use, short string, run func(*App, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(r.app, cmd.Context())
		},
	}
}

// loadConfig layers explicitly set flags over defaults and the JSON file.
func (r *rootCmd) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(r.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = r.serverURL
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = r.dataDir
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = r.timeout
	}
	return cfg, nil
}

func (r *rootCmd) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	app, err := r.newApp(cmd.Context(), cfg, r.in, r.out)
	if err != nil {
		return err
	}
	r.app = app
	return nil
}

// Execute runs the client with args and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	r := newRootCmd(in, out)
	cmd := r.command()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	if r.app != nil {
		if cerr := r.app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	if err != nil {
		fmt.Fprintln(errOut, "Error:", describe(err))
		return 1
	}
	return 0
}
