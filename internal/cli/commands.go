package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dictator/internal/version"
	"github.com/arthur-debert/dictator/pkg/display"
	"github.com/arthur-debert/dictator/pkg/logging"
	"github.com/arthur-debert/dictator/pkg/watch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var dryRun, keepGoing bool

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("dry-run") {
				s.cfg.Run.DryRun = dryRun
			}
			if cmd.Flags().Changed("keep-going") {
				s.cfg.Run.KeepGoing = keepGoing
			}

			command := "run"
			if s.cfg.Run.DryRun {
				command = "check"
			}
			return runPass(s, command, s.cfg.Run.DryRun, s.cfg.Run.KeepGoing)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, MsgFlagKeepGoing)
	return cmd
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("keep-going") {
				s.cfg.Run.KeepGoing = keepGoing
			}
			return runPass(s, "check", true, s.cfg.Run.KeepGoing)
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, MsgFlagKeepGoing)
	return cmd
}

// runPass runs one pass and maps its outcome to an exit status
func runPass(s *session, command string, dryRun, keepGoing bool) error {
	report, err := s.pass(command, dryRun, keepGoing)
	if err != nil {
		return err
	}
	if dryRun && report.HasPending() {
		return pending()
	}
	return nil
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			orch, err := s.orchestrator(s.logger)
			if err != nil {
				return s.fail(err)
			}
			plan, err := orch.LoadAndPlan()
			if err != nil {
				return s.fail(err)
			}

			return s.renderer.RenderResult(display.FromPlan("list", plan))
		},
	}
}

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			orch, err := s.orchestrator(s.logger)
			if err != nil {
				return s.fail(err)
			}
			loaded, err := orch.Load()
			if err != nil {
				return s.fail(err)
			}

			if err := s.renderer.RenderResult(display.FromUnits("validate", loaded)); err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgUnitsValid, len(loaded)))
		},
	}
}

func newWatchCmd(opts *globalOptions) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("keep-going") {
				s.cfg.Run.KeepGoing = keepGoing
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			pass := func(context.Context) error {
				_, err := s.pass("run", false, s.cfg.Run.KeepGoing)
				return err
			}

			// Failures are already rendered, watching goes on
			_ = pass(ctx)

			w := watch.New(s.paths.UnitsDir(), pass, s.cfg.Watch.Debounce, logging.GetLogger("watch"))
			if err := w.Run(ctx); err != nil {
				return s.fail(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, MsgFlagKeepGoing)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			_, _ = fmt.Fprintf(out, MsgLogFormat, logging.LogFilePath())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
