package daoscan

import (
	"github.com/spf13/cobra"

	"github.com/azlands/daoscan/pkg/addins"
)

func newAddinsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "addins",
		Short: MsgAddinsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			installed, err := addins.Load(rt.paths.AddinsFilePath())
			if err != nil {
				return err
			}

			return rt.renderer(cmd).RenderAddins(installed)
		},
	}
}
