package cli

import (
	"Bloghouse/internal/api/config"
	"Bloghouse/internal/pkg/security"
	"Bloghouse/internal/repository"
	"Bloghouse/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var userID uint64
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			// 只为已存在的用户签发
			userSvc := service.NewUserService(repository.NewUserRepo(db))
			user, err := userSvc.GetUser(cmd.Context(), userID)
			if err != nil {
				return err
			}

			token, err := security.NewJWTManager(config.Cfg.Auth).GenerateToken(user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	tokenCmd.Flags().Uint64Var(&userID, "user-id", 0, "id of the user the token identifies")
	_ = tokenCmd.MarkFlagRequired("user-id")
	return tokenCmd
}
