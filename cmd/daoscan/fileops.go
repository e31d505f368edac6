package daoscan

import (
	"github.com/spf13/cobra"

	"github.com/azlands/daoscan/pkg/fileops"
)

func newRmCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: MsgRmShort,
		Long:  MsgRmLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.dryRun {
				for _, path := range args {
					cmd.Printf(MsgWouldDelete, path)
				}
				cmd.Println(MsgDryRunNotice)
				return nil
			}

			for _, path := range args {
				if err := fileops.Delete(path, force); err != nil {
					return err
				}
				cmd.Printf(MsgDeleted, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newRevealCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: MsgRevealShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileops.Reveal(args[0])
		},
	}
}
