// Package cli implements the pixbench command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-pixcmp/internal/buffer"
	"github.com/cwbudde/algo-pixcmp/internal/config"
	"github.com/cwbudde/algo-pixcmp/internal/cpu"
	"github.com/cwbudde/algo-pixcmp/internal/harness"
	"github.com/cwbudde/algo-pixcmp/internal/primitives/install"
)

// Env holds the process boundary of a run. Tests replace its members to
// get deterministic output.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	Clock   harness.Clock
	Detect  func() cpu.ID
	Install func(cpu.ID) install.Tables
	NewPool func(seed int64, depth int) (*buffer.Pool, error)
}

// DefaultEnv returns the environment of the real binary.
func DefaultEnv() *Env {
	return &Env{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Clock:   harness.SystemClock{},
		Detect:  cpu.Detect,
		Install: install.Setup,
		NewPool: func(seed int64, depth int) (*buffer.Pool, error) {
			return buffer.NewPool(seed, depth)
		},
	}
}

// RootOptions holds the flag values of the root command.
type RootOptions struct {
	ConfigPath string
	Primitive  int
	CPUID      int
	Seed       int64
	Iterations int
	Positions  int
	BitDepth   int
	Vector     bool
	Assembly   bool
	LogLevel   string
	Report     string
}

// NewRootCommand creates the pixbench command running against env.
func NewRootCommand(env *Env) *cobra.Command {
	opts := &RootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "pixbench",
		Short: "Conformance and timing bench for pixel comparison primitives",
		Long: "pixbench checks every optimized SATD, SAD and SA8D kernel against the portable\n" +
			"reference on seeded random content and times the ones that agree.\n\n" +
			"Arguments are read as --name value pairs.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), env, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	flags.IntVar(&opts.Primitive, "primitive", def.Primitive, "check only this partition index (0..24)")
	flags.IntVar(&opts.CPUID, "cpuid", def.CPUID, "capability id override (-1 detects)")
	flags.Int64Var(&opts.Seed, "seed", def.Seed, "buffer fill seed")
	flags.IntVar(&opts.Iterations, "iterations", def.Iterations, "timed calls per function")
	flags.IntVar(&opts.Positions, "positions", def.Positions, "offsets checked per slot")
	flags.IntVar(&opts.BitDepth, "bitdepth", def.BitDepth, "sample bit depth (8 or 10)")
	flags.BoolVar(&opts.Vector, "vector", def.Variants.Vector, "check vector class primitives")
	flags.BoolVar(&opts.Assembly, "asm", def.Variants.Assembly, "check assembly primitives")
	flags.StringVar(&opts.LogLevel, "log-level", def.LogLevel, "log level (debug|info|warn|error)")
	flags.StringVar(&opts.Report, "report", "", "write a .json or .yaml run report")

	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	return cmd
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set on top of it.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return cfg, WrapExitError(ExitCommandError, "config", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("primitive") {
		cfg.Primitive = opts.Primitive
	}
	if flags.Changed("cpuid") {
		cfg.CPUID = opts.CPUID
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("iterations") {
		cfg.Iterations = opts.Iterations
	}
	if flags.Changed("positions") {
		cfg.Positions = opts.Positions
	}
	if flags.Changed("bitdepth") {
		cfg.BitDepth = opts.BitDepth
	}
	if flags.Changed("vector") {
		cfg.Variants.Vector = opts.Vector
	}
	if flags.Changed("asm") {
		cfg.Variants.Assembly = opts.Assembly
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("report") {
		cfg.Report = opts.Report
	}

	if err := cfg.Validate(); err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	return cfg, nil
}

// Execute runs the bench for a raw argument vector and returns the process
// exit code.
func Execute(argv []string) int {
	return ExecuteEnv(DefaultEnv(), argv)
}

// ExecuteEnv is Execute against env.
func ExecuteEnv(env *Env, argv []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCommand(env)
	cmd.SetArgs(NormalizeArgs(argv))
	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
	case errors.Is(err, harness.ErrConformanceMismatch):
		// The orchestrator has already printed the variant diagnostic.
	case errors.Is(err, buffer.ErrResourceExhausted):
		fmt.Fprintln(env.Stderr, "pixbench: malloc failed, unable to initiate tests!")
	default:
		fmt.Fprintf(env.Stderr, "pixbench: %v\n", err)
	}
	return ExitCode(err)
}
