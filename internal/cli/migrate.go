package cli

import (
	"Bloghouse/internal/api/config"
	"Bloghouse/internal/pkg/database"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and seed the root category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err = database.RunMigrations(cmd.Context(), db, config.Cfg.App.RootCategoryTitle); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ migrations applied")
			return nil
		},
	}
}
