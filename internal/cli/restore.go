// internal/cli/restore.go

package cli

import (
	"fmt"

	apperr "shawl/internal/error"
	"shawl/internal/storage"

	"github.com/spf13/cobra"
)

func newRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Bring back the form state from before the last session",
		Long: `Replaces the state file with the copy taken on the first write of the
last session that changed it. Only the json backend keeps a copy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := app.cfg.Storage.Backend
			if backend != "" && backend != storage.BackendJSON {
				return apperr.New(apperr.ValidationError, fmt.Sprintf("restore is not supported by the %s backend", backend), nil)
			}

			path := app.cfg.Storage.Path
			if err := storage.RestoreBackup(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s from %s\n", path, path+storage.BackupSuffix)
			return nil
		},
	}
}
