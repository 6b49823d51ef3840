// Package cli implements the gearguard command-line client on top of pkg/client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

// Config holds client settings read from the environment. Flags override it.
type Config struct {
	APIURL      string        `env:"GEARGUARD_API_URL" env-default:"http://localhost:3000/api"`
	SessionFile string        `env:"GEARGUARD_SESSION_FILE"`
	Timeout     time.Duration `env:"GEARGUARD_TIMEOUT" env-default:"15s"`
	Debug       bool          `env:"GEARGUARD_DEBUG" env-default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read client config: %w", err)
	}
	return cfg, nil
}

// IO bundles the streams a command reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// env is the state shared by every subcommand for one invocation.
type env struct {
	cfg    Config
	io     IO
	in     *bufio.Reader
	client *client.Client
	store  *client.FileStore
	color  bool
	now    func() time.Time
}

// NewRootCmd builds the gearguard command tree.
func NewRootCmd(cfg Config, streams IO) *cobra.Command {
	return newRootCmd(cfg, streams, time.Now)
}

func newRootCmd(cfg Config, streams IO, now func() time.Time) *cobra.Command {
	e := &env{
		cfg: cfg,
		io:  streams,
		in:  bufio.NewReader(streams.In),
		now: now,
	}
	var noColor bool

	cmd := &cobra.Command{
		Use:           "gearguard",
		Short:         "Track equipment and its maintenance history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			e.color = !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(streams.Out)
			return e.init()
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	f := cmd.PersistentFlags()
	f.StringVar(&e.cfg.APIURL, "api-url", cfg.APIURL, "API base URL (env GEARGUARD_API_URL)")
	f.StringVar(&e.cfg.SessionFile, "session-file", cfg.SessionFile, "session file path (env GEARGUARD_SESSION_FILE)")
	f.DurationVar(&e.cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	f.BoolVar(&e.cfg.Debug, "debug", cfg.Debug, "log HTTP requests to stderr")
	f.BoolVar(&noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		registerCmd(e),
		loginCmd(e),
		logoutCmd(e),
		whoamiCmd(e),
		equipmentCmd(e),
		logCmd(e),
		dashboardCmd(e),
	)
	return cmd
}

// init opens the session store and restores a saved session, if any.
// An unreadable session file is reported and ignored so that login can replace it.
func (e *env) init() error {
	store, err := client.NewFileStore(e.cfg.SessionFile)
	if err != nil {
		return err
	}
	e.store = store

	opts := []client.Option{client.WithTimeout(e.cfg.Timeout)}
	if e.cfg.Debug {
		opts = append(opts, client.WithLogger(slog.New(slog.NewTextHandler(e.io.Err, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	sess, err := store.Load()
	switch {
	case err == nil:
		opts = append(opts, client.WithSession(sess))
	case errors.Is(err, client.ErrNoSession):
	default:
		fmt.Fprintf(e.io.Err, "warning: ignoring saved session: %v\n", err)
	}

	e.client = client.New(e.cfg.APIURL, opts...)
	return nil
}

// requireSession fails early with a readable message when no one is signed in.
func (e *env) requireSession() error {
	if e.client.Session() == nil {
		return errors.New("not signed in: run 'gearguard login' first")
	}
	return nil
}

// signedInPreRun chains the root hook and then requires a session.
// Cobra only runs the nearest PersistentPreRunE.
func (e *env) signedInPreRun(cmd *cobra.Command, args []string) error {
	if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
		return err
	}
	return e.requireSession()
}

// call runs fn and turns an expired session into a cleared store and a hint.
func (e *env) call(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil && client.IsUnauthorized(err) && e.client.Session() != nil {
		e.client.Logout()
		if clearErr := e.store.Clear(); clearErr != nil {
			return errors.Join(err, clearErr)
		}
		return fmt.Errorf("session expired: run 'gearguard login' again: %w", err)
	}
	return err
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.io.Out, format, args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
