package daoscan

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/azlands/daoscan/pkg/commands/scan"
	"github.com/azlands/daoscan/pkg/display"
)

func newScanCmd(flags *rootFlags) *cobra.Command {
	var (
		workers     int
		showIgnored bool
	)

	cmd := &cobra.Command{
		Use:     "scan",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			if err := rt.paths.ValidateGameDir(); err != nil {
				return err
			}

			if workers == 0 {
				workers = rt.settings.Scan.Workers
			}

			var spinner *pterm.SpinnerPrinter
			if rt.format == display.FormatTerminal {
				spinner, _ = pterm.DefaultSpinner.
					WithWriter(cmd.ErrOrStderr()).
					Start("Scanning " + rt.paths.GameDir())
			}

			result, err := scan.Run(scan.Options{
				GameDir:    rt.paths.GameDir(),
				Workers:    workers,
				IgnoreKeys: rt.settings.Scan.Ignore,
				IgnorePath: rt.paths.IgnoreFilePath(),
			})

			if spinner != nil {
				_ = spinner.Stop()
			}
			if err != nil {
				return err
			}

			return rt.renderer(cmd).RenderScan(result.Report, result.Active, result.Ignored, showIgnored)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, MsgFlagWorkers)
	cmd.Flags().BoolVar(&showIgnored, "all", false, MsgFlagAll)

	return cmd
}
