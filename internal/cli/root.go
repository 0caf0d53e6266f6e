// Package cli builds the dictator command tree.
package cli

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/dictator/internal/version"
	"github.com/arthur-debert/dictator/pkg/cobrax/topics"
	"github.com/arthur-debert/dictator/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

// globalOptions holds the persistent flag values
type globalOptions struct {
	verbosity    int
	dictatorRoot string
	targetRoot   string
	format       string
	configFile   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:     "dictator",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.dictatorRoot, "dictator", "d", "", MsgFlagDictator)
	flags.StringVarP(&opts.targetRoot, "target", "t", "", MsgFlagTarget)
	flags.StringVar(&opts.format, "format", "", MsgFlagFormat)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	helpFS, err := fs.Sub(helpFiles, "help")
	if err == nil {
		renderer := topics.NewGlamourRenderer()
		if os.Getenv("NO_COLOR") != "" || !stdoutIsTerminal() {
			renderer = topics.NewPlainGlamourRenderer()
		}
		// Topics are optional, a failure leaves cobra's help in place
		_ = topics.InitializeWithOptions(rootCmd, helpFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   renderer,
		})
	}

	return rootCmd
}
