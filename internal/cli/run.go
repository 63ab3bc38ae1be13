package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-pixcmp/internal/config"
	"github.com/cwbudde/algo-pixcmp/internal/cpu"
	"github.com/cwbudde/algo-pixcmp/internal/harness"
	"github.com/cwbudde/algo-pixcmp/internal/primitives"
	"github.com/cwbudde/algo-pixcmp/internal/report"
)

// run executes one bench pass with a validated config.
func run(ctx context.Context, env *Env, cfg config.Config) error {
	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))

	pool, err := env.NewPool(cfg.EffectiveSeed(), cfg.BitDepth)
	if err != nil {
		return WrapExitError(ExitCommandError, "allocate buffers", err)
	}

	id := cpu.ID(cfg.CPUID)
	if cfg.CPUID < 0 {
		id = env.Detect()
	}
	tables := env.Install(id)
	log.Info("capability", "cpuid", int(id), "name", id.String(),
		"vector_slots", tables.Vectorized.Populated(), "assembly_slots", tables.Assembly.Populated())

	var variants []harness.Variant
	if cfg.Variants.Vector {
		variants = append(variants, harness.Variant{Kind: primitives.Vectorized, Table: tables.Vectorized})
	}
	if cfg.Variants.Assembly {
		variants = append(variants, harness.Variant{Kind: primitives.Assembly, Table: tables.Assembly})
	}

	orch := harness.New(cfg.Policy(), pool, env.Clock)
	orch.Out = env.Stdout
	orch.Err = env.Stderr
	orch.Logger = log

	sum, runErr := orch.Run(ctx, tables.Reference, variants, harness.Options{Single: cfg.Single()})
	if sum != nil && cfg.Report != "" {
		rep := report.New(report.Run{Seed: cfg.EffectiveSeed(), BitDepth: cfg.BitDepth, CPU: id.String()}, sum)
		if err := rep.WriteFile(cfg.Report); err != nil {
			log.Error("report not written", "path", cfg.Report, "error", err)
			if runErr == nil {
				return WrapExitError(ExitCommandError, "report", err)
			}
		}
	}

	if runErr != nil {
		if errors.Is(runErr, harness.ErrConformanceMismatch) {
			return WrapExitError(ExitFailure, "conformance", runErr)
		}
		return WrapExitError(ExitCommandError, "run", runErr)
	}

	fmt.Fprintln(env.Stderr, "pixbench: All tests passed Yeah :)")
	return nil
}
