package daoscan

import (
	"github.com/spf13/cobra"

	"github.com/azlands/daoscan/pkg/commands/archive"
)

func newArchiveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "archive",
		Short:   MsgArchiveShort,
		Long:    MsgArchiveLong,
		Example: MsgArchiveExample,
	}

	cmd.AddCommand(newArchiveInfoCmd(flags))
	cmd.AddCommand(newArchiveListCmd(flags))
	cmd.AddCommand(newArchiveExtractCmd(flags))

	return cmd
}

func newArchiveInfoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.erf>",
		Short: MsgInfoShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			return rt.renderer(cmd).RenderArchiveInfo(a)
		},
	}
}

func newArchiveListCmd(flags *rootFlags) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list <file.erf>",
		Short: MsgListShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			return rt.renderer(cmd).RenderArchiveList(a, long)
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, MsgFlagLong)
	return cmd
}

func newArchiveExtractCmd(flags *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract <file.erf> <resource>",
		Short: MsgExtractShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "-" {
				data, err := archive.Extract(args[0], args[1])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			written, err := archive.ExtractToFile(args[0], args[1], out)
			if err != nil {
				return err
			}
			cmd.Printf("extracted %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	return cmd
}
