package cli

import (
	"Bloghouse/internal/model"
	"Bloghouse/internal/repository"
	"Bloghouse/internal/service"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGuardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guards",
		Short: "Print the checks each delete runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			policy := service.NewDeletePolicy(repository.NewCategoryRepo(db), repository.NewPostRepository(db))
			for _, entity := range []model.Entity{model.EntityCategory, model.EntityPost} {
				guards := policy.Guards(entity)
				if len(guards) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: (none)\n", entity)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", entity, strings.Join(guards, ", "))
			}
			return nil
		},
	}
}
