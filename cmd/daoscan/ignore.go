package daoscan

import (
	"github.com/spf13/cobra"

	"github.com/azlands/daoscan/pkg/commands/scan"
	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/ignore"
)

func newIgnoreCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "ignore <key>",
		Short:   MsgIgnoreShort,
		Long:    MsgIgnoreLong,
		Example: MsgIgnoreExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			if err := rt.paths.ValidateGameDir(); err != nil {
				return err
			}

			// Resolve the key's current path set with a fresh scan;
			// a dismissal pins exactly those paths.
			result, err := scan.Run(scan.Options{
				GameDir:    rt.paths.GameDir(),
				Workers:    rt.settings.Scan.Workers,
				IgnoreKeys: rt.settings.Scan.Ignore,
			})
			if err != nil {
				return err
			}

			key := args[0]
			paths, ok := result.Report.Conflicts[key]
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "no conflict named %q in the current scan", key)
			}

			store := ignore.Load(rt.paths.IgnoreFilePath())
			store.Add(key, paths)
			if err := store.Save(); err != nil {
				return err
			}

			cmd.Printf(MsgIgnoredKey, key, len(paths))
			return nil
		},
	}
}

func newUnignoreCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unignore <key>",
		Short: MsgUnignoreShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			store := ignore.Load(rt.paths.IgnoreFilePath())
			if !store.Remove(args[0]) {
				return errors.Newf(errors.ErrInvalidInput, "%q is not dismissed", args[0])
			}
			if err := store.Save(); err != nil {
				return err
			}

			cmd.Printf(MsgUnignoredKey, args[0])
			return nil
		},
	}
}

func newIgnoredCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ignored",
		Short: MsgIgnoredShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}

			store := ignore.Load(rt.paths.IgnoreFilePath())
			if store.Len() == 0 {
				cmd.Println(MsgNoIgnored)
				return nil
			}

			for _, key := range store.Keys() {
				cmd.Println(key)
				for _, path := range store.Paths(key) {
					cmd.Printf("  %s\n", path)
				}
			}
			return nil
		},
	}
}
