package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"beatinfo/internal/fileutil"
	"beatinfo/internal/infodat"
)

// errNeedsNormalize signals a --check run that found differences.
var errNeedsNormalize = errors.New("descriptor is not normalized")

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "normalize <dir>",
		Short: "Rewrite info.dat in canonical form",
		Long: "Rewrite info.dat in canonical key order with compatibility cleanup applied.\n" +
			"With --check nothing is written and the command fails when the file would change.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}
			dir := args[0]
			s, err := store.Load(dir)
			if err != nil {
				return err
			}

			rendered, err := infodat.Render(s)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, infodat.InfoFilename)
			current, err := fileutil.FileDigest(path)
			if err != nil {
				return fmt.Errorf("hash %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			if current == fileutil.Digest(rendered) {
				fmt.Fprintf(out, "%s already normalized\n", path)
				return nil
			}
			if check {
				fmt.Fprintf(out, "%s needs normalization\n", path)
				return errNeedsNormalize
			}
			if err := store.Save(s); err != nil {
				return err
			}
			fmt.Fprintf(out, "Normalized %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Report whether the file is normalized without writing")
	return cmd
}
