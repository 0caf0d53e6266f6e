package cli

import (
	"io"
	"time"

	"github.com/arthur-debert/dictator/pkg/config"
	"github.com/arthur-debert/dictator/pkg/display"
	"github.com/arthur-debert/dictator/pkg/executor"
	"github.com/arthur-debert/dictator/pkg/filesystem"
	"github.com/arthur-debert/dictator/pkg/logging"
	"github.com/arthur-debert/dictator/pkg/paths"
	"github.com/arthur-debert/dictator/pkg/ui"
	"github.com/arthur-debert/dictator/pkg/units"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session is the resolved environment of one command invocation
type session struct {
	paths    paths.Paths
	cfg      *config.Config
	logger   zerolog.Logger
	renderer ui.Renderer
}

// newSession resolves roots, loads the layered config, applies the format
// flag and picks the renderer for cmd's output
func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	out := cmd.OutOrStdout()

	// Roots first: the root config file lives in the dictator root
	p, err := paths.New(opts.dictatorRoot, opts.targetRoot, "")
	if err != nil {
		return nil, renderEarly(out, opts.format, err)
	}

	userConfig := opts.configFile
	if userConfig == "" {
		userConfig = p.UserConfigPath()
	}
	cfg, err := config.New(config.Sources{UserConfig: userConfig, RootConfig: p.RootConfigPath()})
	if err != nil {
		return nil, renderEarly(out, opts.format, err)
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = opts.format
	}

	if cfg.Paths.UnitsDir != paths.DefaultUnitsDir {
		p, err = paths.New(p.DictatorRoot(), p.TargetRoot(), cfg.Paths.UnitsDir)
		if err != nil {
			return nil, renderEarly(out, opts.format, err)
		}
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, renderEarly(out, "", err)
	}
	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("dictator_root", p.DictatorRoot()).
		Str("target_root", p.TargetRoot()).
		Str("units_dir", p.UnitsDir()).
		Str("format", format.String()).
		Msg("session ready")

	return &session{paths: p, cfg: cfg, logger: logger, renderer: renderer}, nil
}

// renderEarly reports errors raised before the configured renderer exists
func renderEarly(out io.Writer, format string, err error) error {
	f, perr := ui.ParseFormat(format)
	if perr != nil {
		f = ui.FormatAuto
	}
	if r, rerr := ui.NewRenderer(f, out); rerr == nil {
		_ = r.RenderError(err)
		return reported(err)
	}
	return err
}

func (s *session) orchestrator(logger zerolog.Logger) (*units.Orchestrator, error) {
	return units.New(units.Options{
		FS:        filesystem.NewOS(),
		Paths:     s.paths,
		Logger:    logger,
		UnitFiles: s.cfg.Paths.UnitFiles,
	})
}

// fail renders err and marks it reported
func (s *session) fail(err error) error {
	_ = s.renderer.RenderError(err)
	return reported(err)
}

// pass runs one enforcement pass and renders its report
func (s *session) pass(command string, dryRun, keepGoing bool) (executor.Report, error) {
	logger, _ := logging.WithRunID(s.logger)
	logger.Info().
		Str("command", command).
		Bool("dry_run", dryRun).
		Bool("keep_going", keepGoing).
		Msg("pass started")

	start := time.Now()
	orch, err := s.orchestrator(logger)
	if err != nil {
		return executor.Report{}, s.fail(err)
	}

	plan, err := orch.LoadAndPlan()
	if err != nil {
		return executor.Report{}, s.fail(err)
	}

	execLogger := logger.With().Str("component", "executor").Logger()
	report := executor.Run(plan.Items(), executor.Options{
		DryRun:    dryRun,
		KeepGoing: keepGoing,
		Logger:    &execLogger,
	})

	view := display.FromRun(command, plan, report, time.Since(start))
	if err := s.renderer.RenderResult(view); err != nil {
		return report, err
	}

	counts := report.Counts()
	logger.Info().
		Int("changed", counts[executor.StatusChanged]).
		Int("unchanged", counts[executor.StatusUnchanged]).
		Int("pending", counts[executor.StatusPending]).
		Int("failed", counts[executor.StatusFailed]).
		Dur("duration", time.Since(start)).
		Msg("pass finished")

	if report.Err != nil {
		return report, reported(report.Err)
	}
	return report, nil
}
