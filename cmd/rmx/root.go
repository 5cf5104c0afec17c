package main

import (
	"fmt"
	"os"

	"github.com/bethropolis/rmx/internal/app"
	"github.com/bethropolis/rmx/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the rmx command. cwd provides the default --path.
func newRootCmd(cwd func() (string, error)) *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "rmx [flags] EXTENSIONS...",
		Short: "Delete files based on their extension",
		Long: `rmx deletes the files of a directory whose extension is one of EXTENSIONS.

Extensions are given without the leading dot and may have several parts,
like "o", "so" or "tar.gz". A file matches when its extension ends with
one of them: "gz" matches "backup.tar.gz", "tar" does not.

Hidden files are skipped unless --all is given. You are asked to confirm
before anything is deleted, unless --force is given.`,
		Example: `  rmx -r o a so            remove object files and libraries recursively
  rmx -n -p build tar.gz   list the tarballs under build/ without deleting
  rmx -i -f txt            remove every file of the current directory but *.txt
  rmx --preset latex       remove the extensions of the "latex" preset`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Finalize(args, cwd); err != nil {
				return err
			}
			cfg.DetectColors(asFile(cmd.OutOrStdout()), asFile(cmd.ErrOrStderr()))

			return app.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()).Run(cmd.Context())
		},
	}
	cfg.BindFlags(cmd.Flags())

	return cmd
}

// asFile returns w as an *os.File when it is one, for terminal detection.
func asFile(w any) *os.File {
	f, _ := w.(*os.File)
	return f
}
