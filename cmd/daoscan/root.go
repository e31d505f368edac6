// Package daoscan wires the CLI: the root command, its subcommands,
// and the shared runtime (paths, config, output format) they build on.
package daoscan

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/azlands/daoscan/internal/version"
	"github.com/azlands/daoscan/pkg/cobrax/topics"
	"github.com/azlands/daoscan/pkg/config"
	"github.com/azlands/daoscan/pkg/display"
	"github.com/azlands/daoscan/pkg/logging"
	"github.com/azlands/daoscan/pkg/paths"
)

//go:embed topics/*.md
var topicFiles embed.FS

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	verbosity int
	gameDir   string
	format    string
	dryRun    bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "daoscan",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag the incorrect usage.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.gameDir, "game-dir", "", MsgFlagGameDir)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newScanCmd(flags))
	rootCmd.AddCommand(newArchiveCmd(flags))
	rootCmd.AddCommand(newIgnoreCmd(flags))
	rootCmd.AddCommand(newUnignoreCmd(flags))
	rootCmd.AddCommand(newIgnoredCmd(flags))
	rootCmd.AddCommand(newAddinsCmd(flags))
	rootCmd.AddCommand(newRmCmd(flags))
	rootCmd.AddCommand(newRevealCmd(flags))
	rootCmd.AddCommand(newGenconfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics wires the embedded help topics into the help system.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}
	manager, err := topics.Load(sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		return
	}
	manager.Install(rootCmd)
}

// runtime bundles the resolved environment a subcommand runs against.
type runtime struct {
	paths    *paths.Paths
	settings *config.Settings
	format   display.Format
}

// newRuntime resolves paths, configuration, and output format.
// Precedence for the game directory: --game-dir flag, then
// DAOSCAN_GAME_DIR, then game_dir in config, then the default
// Documents location. The env beats the file because the config layer
// already applies it on top of the loaded settings.
func newRuntime(flags *rootFlags) (*runtime, error) {
	bootstrap, err := paths.New(flags.gameDir)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(bootstrap.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	gameDir := flags.gameDir
	if gameDir == "" && os.Getenv(paths.EnvGameDir) == "" {
		gameDir = settings.GameDir
	}
	p, err := paths.New(gameDir)
	if err != nil {
		return nil, err
	}

	formatName := flags.format
	if formatName == "" {
		formatName = settings.UI.Format
	}
	format, err := display.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return &runtime{
		paths:    p,
		settings: settings,
		format:   format.Resolve(os.Stdout),
	}, nil
}

// renderer builds a display renderer for the command's stdout.
func (rt *runtime) renderer(cmd *cobra.Command) *display.Renderer {
	return display.NewRenderer(cmd.OutOrStdout(), rt.format)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("daoscan version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newGenconfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			path := rt.paths.ConfigFilePath()
			if _, err := os.Stat(path); err == nil {
				cmd.Printf(MsgConfigExists, path)
				return nil
			}

			if err := os.MkdirAll(rt.paths.ConfigDir(), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(config.DefaultConfigContent()), 0644); err != nil {
				return err
			}
			cmd.Printf(MsgConfigWritten, path)
			return nil
		},
	}
}
