// Package cli implements the mhike command tree. It is the presentation
// collaborator of the logbook: every command parses its input, calls one
// service operation and prints the result. All commands share the app
// struct so they can reach the services opened by the root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/mhike/internal/config"
	"github.com/pkordes/mhike/internal/domain"
)

// HikeServicer defines the hike operations the commands depend on.
// Defining the interface here (in the consumer package) lets command tests
// inject a mock without touching the database or service layer.
type HikeServicer interface {
	Create(ctx context.Context, hike domain.Hike) (domain.Hike, error)
	GetByID(ctx context.Context, id int64) (domain.Hike, error)
	Search(ctx context.Context, filter domain.HikeFilter) ([]domain.Hike, error)
	Update(ctx context.Context, hike domain.Hike) error
	Delete(ctx context.Context, id int64) error
	ResetAll(ctx context.Context) error
}

// ObservationServicer defines the observation operations the commands depend on.
type ObservationServicer interface {
	Create(ctx context.Context, obs domain.Observation) (domain.Observation, error)
	GetByID(ctx context.Context, id int64) (domain.Observation, error)
	ListByHikeID(ctx context.Context, hikeID int64) ([]domain.Observation, error)
	Update(ctx context.Context, obs domain.Observation) error
	Delete(ctx context.Context, id int64) error
}

// Services is what ConnectFunc hands back: the two services and the
// teardown for whatever they were built on.
type Services struct {
	Hikes        HikeServicer
	Observations ObservationServicer
	// Close releases the store. It is called once, after the command ran.
	Close func() error
}

// ConnectFunc opens the store described by cfg and wires the services.
// The composition root (cmd/mhike) provides it; tests provide fakes.
type ConnectFunc func(ctx context.Context, cfg config.Config, log *slog.Logger) (Services, error)

// app carries the global flags and the connected services.
type app struct {
	connect ConnectFunc
	errOut  io.Writer

	flagConfig string
	flagDB     string
	flagJSON   bool

	cfg config.Config
	log *slog.Logger
	svc Services
}

// CLI is a ready-to-run mhike command tree.
type CLI struct {
	root *cobra.Command
	app  *app
}

// New builds the command tree. Command output goes to out; logs and error
// messages go to errOut.
func New(connect ConnectFunc, out, errOut io.Writer) *CLI {
	a := &app{connect: connect, errOut: errOut}

	root := &cobra.Command{
		Use:   "mhike",
		Short: "mhike keeps a local logbook of hikes and field observations",
		Long: `mhike records hikes and the observations made along the way in a
local SQLite database. Deleting a hike deletes its observations.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.flagDB, "db", "", "database file (overrides config and MHIKE_DB_PATH)")
	root.PersistentFlags().BoolVar(&a.flagJSON, "json", false, "output as JSON")

	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newHikeCmd())
	root.AddCommand(a.newObservationCmd())
	root.AddCommand(a.newResetCmd())

	return &CLI{root: root, app: a}
}

// Run executes the command line args and returns the process exit code.
// The store is closed before Run returns, whether the command failed or not.
func (c *CLI) Run(ctx context.Context, args []string) int {
	start := time.Now()
	c.root.SetArgs(args)
	cmd, err := c.root.ExecuteContextC(ctx)

	if cerr := c.app.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(c.app.errOut, "Error:", err)
	}

	code := exitCode(err)
	if c.app.log != nil {
		logCommand(ctx, c.app.log, cmd, code, err, time.Since(start))
	}
	return code
}

// setup loads config, builds the logger and connects the services.
// help does not need the store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return usageError{fmt.Errorf("load config: %w", err)}
	}
	if a.flagDB != "" {
		cfg.DBPath = a.flagDB
	}
	a.cfg = cfg
	a.log = newLogger(cfg, a.errOut)

	svc, err := a.connect(cmd.Context(), cfg, a.log)
	if err != nil {
		return fmt.Errorf("open logbook: %w", err)
	}
	a.svc = svc
	a.log.Debug("logbook opened", "path", cfg.DBPath, "command", cmd.CommandPath())
	return nil
}

func (a *app) close() error {
	if a.svc.Close == nil {
		return nil
	}
	err := a.svc.Close()
	a.svc = Services{}
	return err
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the logbook database if it does not exist",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The store is initialized by setup; just confirm where it lives.
			fmt.Fprintf(cmd.OutOrStdout(), "Logbook ready at %s\n", a.cfg.DBPath)
			return nil
		},
	}
}
