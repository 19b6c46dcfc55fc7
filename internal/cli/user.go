package cli

import (
	"Bloghouse/internal/repository"
	"Bloghouse/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage author accounts",
	}

	var name, email string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create an author account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			userSvc := service.NewUserService(repository.NewUserRepo(db))
			user, err := userSvc.CreateUser(cmd.Context(), name, email)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ user %d created (%s <%s>)\n", user.ID, user.Name, user.Email)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "display name")
	addCmd.Flags().StringVar(&email, "email", "", "unique email address")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("email")

	userCmd.AddCommand(addCmd)
	return userCmd
}
